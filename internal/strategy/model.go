package strategy

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/npc-quest/internal/emotion"
)

//go:embed defaults/model.yaml
var defaultModelYAML []byte

// featureCount is the width of the classifier input vector: positions,
// health, proximities, counters, room, one-hot current and lagged intent,
// one-hot lagged emotion.
const featureCount = 22

// Package-level model path, set by the CLI before strategy creation
// (same pattern the games use for config paths).
var modelPath string

// SetModelPath sets the weights file path for the classifier strategy.
// Empty means the embedded default model.
func SetModelPath(path string) {
	modelPath = path
}

// modelFile is the on-disk YAML layout of the classifier weights.
type modelFile struct {
	Labels  []string    `yaml:"labels"`
	Bias    []float64   `yaml:"bias"`
	Weights [][]float64 `yaml:"weights"`
}

// Model is the pretrained-classifier strategy: a linear multi-class scorer
// over the observation features, argmax over the six labels. When the
// weights cannot be loaded it degrades to the rule table so a run never
// depends on the file being present.
type Model struct {
	path    string
	loaded  bool
	labels  []emotion.Emotion
	bias    []float64
	weights [][]float64
}

// NewModel creates the classifier strategy reading weights from path at
// Init time. Empty path selects the embedded default model.
func NewModel(path string) *Model {
	return &Model{path: path}
}

func init() {
	Register("model", "Pretrained emotion classifier", func() emotion.Strategy {
		return NewModel(modelPath)
	})
}

// Name returns the strategy identifier.
func (s *Model) Name() string { return "model" }

// Init loads and validates the weights file. On error the strategy stays
// in degraded mode; the session must not be blocked by a missing model.
func (s *Model) Init(cfg emotion.InitConfig) error {
	s.loaded = false

	data := defaultModelYAML
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("strategy: cannot read model %s: %w", s.path, err)
		}
	}

	var mf modelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("strategy: cannot parse model: %w", err)
	}

	if len(mf.Labels) != emotion.Count || len(mf.Bias) != emotion.Count || len(mf.Weights) != emotion.Count {
		return fmt.Errorf("strategy: model must define %d classes, got %d/%d/%d",
			emotion.Count, len(mf.Labels), len(mf.Bias), len(mf.Weights))
	}

	labels := make([]emotion.Emotion, emotion.Count)
	for i, name := range mf.Labels {
		e, err := parseEmotion(name)
		if err != nil {
			return err
		}
		labels[i] = e
	}

	for i, row := range mf.Weights {
		if len(row) != featureCount {
			return fmt.Errorf("strategy: weight row %d has %d features, expected %d",
				i, len(row), featureCount)
		}
	}

	s.labels = labels
	s.bias = mf.Bias
	s.weights = mf.Weights
	s.loaded = true
	return nil
}

// Decide scores the observation against every class and returns the argmax.
// In degraded mode it answers with the rule table instead.
func (s *Model) Decide(obs emotion.Observation) (emotion.Emotion, error) {
	if !s.loaded {
		return emotion.Rules(obs), nil
	}

	x := featureVector(obs)

	best := 0
	bestScore := 0.0
	for i := range s.labels {
		score := s.bias[i]
		for j, w := range s.weights[i] {
			score += w * x[j]
		}
		if i == 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	return s.labels[best], nil
}

// featureVector encodes an observation in the fixed training order.
func featureVector(obs emotion.Observation) [featureCount]float64 {
	var x [featureCount]float64

	x[0] = obs.PlayerX
	x[1] = obs.PlayerY
	x[2] = obs.CompanionX
	x[3] = obs.CompanionY
	x[4] = obs.PlayerHealth
	x[5] = obs.EnemyDistance
	x[6] = obs.ResourceDistance
	x[7] = float64(obs.ResourcesCollected)
	x[8] = float64(obs.EnemiesKilled)
	x[9] = float64(obs.Room)

	// One-hot current and lagged intent
	x[10+int(obs.Intent)] = 1
	x[13+int(obs.LaggedIntent)] = 1

	// One-hot lagged emotion
	x[16+int(obs.LaggedEmotion)] = 1

	return x
}

func parseEmotion(name string) (emotion.Emotion, error) {
	for e := emotion.Anticipation; e <= emotion.Sadness; e++ {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("strategy: unknown emotion label %q", name)
}
