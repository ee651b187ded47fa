package strategy

import "github.com/vovakirdan/npc-quest/internal/emotion"

// Rules is the deterministic rule-table strategy. It is stateless: the
// whole decision is the fixed cascade in emotion.Rules.
type Rules struct{}

// NewRules creates the rule-based strategy.
func NewRules() *Rules {
	return &Rules{}
}

func init() {
	Register("rules", "Deterministic rule table", func() emotion.Strategy {
		return NewRules()
	})
}

// Name returns the strategy identifier.
func (s *Rules) Name() string { return "rules" }

// Init is a no-op; the rule table needs no precomputation.
func (s *Rules) Init(cfg emotion.InitConfig) error { return nil }

// Decide evaluates the rule cascade. It cannot fail.
func (s *Rules) Decide(obs emotion.Observation) (emotion.Emotion, error) {
	return emotion.Rules(obs), nil
}
