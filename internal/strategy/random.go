package strategy

import (
	"math/rand"

	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// Emotion hold interval for the stochastic condition: switching every tick
// reads as glitching, so a new label is drawn only every ~35 ticks with
// some jitter.
const (
	changeInterval = 35
	changeJitter   = 15
)

// Random is the stochastic strategy: it holds the lagged emotion for a
// jittered interval, then draws a uniformly random label.
type Random struct {
	rng      *rand.Rand
	cooldown int
}

// NewRandom creates the stochastic strategy.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(1))}
}

func init() {
	Register("random", "Uniformly random emotions on a jittered interval", func() emotion.Strategy {
		return NewRandom()
	})
}

// Name returns the strategy identifier.
func (s *Random) Name() string { return "random" }

// Init reseeds the RNG so runs with the same seed draw the same sequence.
func (s *Random) Init(cfg emotion.InitConfig) error {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.cooldown = 0
	return nil
}

// Decide returns the lagged emotion until the hold interval expires, then
// draws a new one. It cannot fail.
func (s *Random) Decide(obs emotion.Observation) (emotion.Emotion, error) {
	s.cooldown--
	if s.cooldown > 0 {
		return obs.LaggedEmotion, nil
	}

	next := emotion.Emotion(s.rng.Intn(emotion.Count))
	s.cooldown = changeInterval + s.rng.Intn(2*changeJitter+1) - changeJitter
	return next, nil
}
