// Package emotion defines the companion affect model: the six emotion
// labels, the behavior reactions derived from them, and the contract a
// decision strategy has to fulfill. It contains no simulation state so
// strategies and the simulation core can both depend on it.
package emotion

import "math"

// Emotion is one of the six companion affect labels.
type Emotion int

const (
	Anticipation Emotion = iota
	Happiness
	Fear
	Anger
	Surprise
	Sadness
)

// Count is the number of emotion labels, useful for classifiers.
const Count = 6

// String returns the label used in logs, model files and result records.
func (e Emotion) String() string {
	switch e {
	case Anticipation:
		return "anticipation"
	case Happiness:
		return "happiness"
	case Fear:
		return "fear"
	case Anger:
		return "anger"
	case Surprise:
		return "surprise"
	case Sadness:
		return "sadness"
	default:
		return "unknown"
	}
}

// Valid reports whether e is one of the six defined labels.
func (e Emotion) Valid() bool {
	return e >= Anticipation && e <= Sadness
}

// Symbol returns the speech-bubble glyph shown above the companion.
func (e Emotion) Symbol() string {
	switch e {
	case Anticipation:
		return "..."
	case Happiness:
		return ":)"
	case Fear:
		return "!!"
	case Anger:
		return ">:("
	case Surprise:
		return "?!"
	case Sadness:
		return ":("
	default:
		return "?"
	}
}

// Reaction is the companion behavior mode, derived from emotion.
type Reaction int

const (
	Follow Reaction = iota
	NotifyResource
	NotifyDanger
	AttackEnemy
	NotifySurprise
	ProvideHealing
)

// String returns a human-readable name for the reaction.
func (r Reaction) String() string {
	switch r {
	case Follow:
		return "follow"
	case NotifyResource:
		return "notify_resource"
	case NotifyDanger:
		return "notify_danger"
	case AttackEnemy:
		return "attack_enemy"
	case NotifySurprise:
		return "notify_surprise"
	case ProvideHealing:
		return "provide_healing"
	default:
		return "unknown"
	}
}

// reactions is the fixed one-to-one emotion to reaction table.
var reactions = map[Emotion]Reaction{
	Anticipation: Follow,
	Happiness:    NotifyResource,
	Fear:         NotifyDanger,
	Anger:        AttackEnemy,
	Surprise:     NotifySurprise,
	Sadness:      ProvideHealing,
}

// Reaction returns the behavior mode for this emotion.
func (e Emotion) Reaction() Reaction {
	return reactions[e]
}

// Intent is the player's action state as seen by the decision strategies.
type Intent int

const (
	IntentIdle Intent = iota
	IntentMove
	IntentAttack
)

// String returns the label used in model feature encoding.
func (i Intent) String() string {
	switch i {
	case IntentIdle:
		return "idle"
	case IntentMove:
		return "move"
	case IntentAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Observation is the read-only snapshot handed to a strategy each tick.
// Distances use DistanceSentinel when no candidate exists in the room.
// Strategies must not retain the value across calls.
type Observation struct {
	PlayerHealth       float64
	EnemyDistance      float64
	ResourceDistance   float64
	LaggedIntent       Intent
	Room               int
	PlayerX, PlayerY   float64
	CompanionX         float64
	CompanionY         float64
	ResourcesCollected int
	EnemiesKilled      int
	LaggedEmotion      Emotion
	Intent             Intent
}

// DistanceSentinel stands in for "no enemy/resource in the room".
const DistanceSentinel = 1000

// InitConfig is passed to a strategy's one-time Init hook at reset.
type InitConfig struct {
	Seed     int64
	TickRate int
}

// Strategy computes the companion's next emotion from an observation.
// Decide must return one of the six labels and must never panic the tick:
// on internal failure it returns an error and the caller falls back to the
// lagged emotion. Init runs once per session reset and may do local
// precomputation (e.g. loading classifier weights); a failed Init leaves
// the strategy in a degraded but callable state.
type Strategy interface {
	Name() string
	Init(cfg InitConfig) error
	Decide(obs Observation) (Emotion, error)
}

// Rule thresholds, shared by the rule strategy and classifier fallbacks.
const (
	ruleResourceNear  = 150 // resource within notify radius
	ruleEnemyMedium   = 125 // enemy close enough to fear
	ruleEnemyClose    = 60  // enemy inside attack range
	ruleSurpriseRange = 60  // player attacking right next to the companion
	ruleLowHealth     = 30
)

// Rules evaluates the fixed rule cascade. Later checks override earlier
// ones, so the priority order is: resource < enemy-medium < enemy-close <
// attack-surprise < low-health.
func Rules(obs Observation) Emotion {
	e := Anticipation

	if obs.ResourceDistance < ruleResourceNear {
		e = Happiness
	}
	if obs.EnemyDistance < ruleEnemyMedium {
		e = Fear
	}
	if obs.EnemyDistance < ruleEnemyClose {
		e = Anger
	}
	if obs.Intent == IntentAttack &&
		math.Hypot(obs.PlayerX-obs.CompanionX, obs.PlayerY-obs.CompanionY) < ruleSurpriseRange {
		e = Surprise
	}
	if obs.PlayerHealth <= ruleLowHealth {
		e = Sadness
	}

	return e
}
