package emotion

import "testing"

func TestReactionTableIsPure(t *testing.T) {
	// Identical emotion values must always yield identical reactions.
	expected := map[Emotion]Reaction{
		Anticipation: Follow,
		Happiness:    NotifyResource,
		Fear:         NotifyDanger,
		Anger:        AttackEnemy,
		Surprise:     NotifySurprise,
		Sadness:      ProvideHealing,
	}

	for e, want := range expected {
		for i := 0; i < 3; i++ {
			if got := e.Reaction(); got != want {
				t.Errorf("%v.Reaction() = %v, expected %v", e, got, want)
			}
		}
	}
}

func TestRulesPriority(t *testing.T) {
	// Base observation: nothing nearby, healthy player.
	base := Observation{
		PlayerHealth:     100,
		EnemyDistance:    DistanceSentinel,
		ResourceDistance: DistanceSentinel,
	}

	tests := []struct {
		name     string
		mutate   func(o *Observation)
		expected Emotion
	}{
		{
			name:     "default is anticipation",
			mutate:   func(o *Observation) {},
			expected: Anticipation,
		},
		{
			name: "resource nearby",
			mutate: func(o *Observation) {
				o.ResourceDistance = 149
			},
			expected: Happiness,
		},
		{
			name: "enemy at medium distance",
			mutate: func(o *Observation) {
				o.EnemyDistance = 124
			},
			expected: Fear,
		},
		{
			name: "enemy close overrides resource",
			mutate: func(o *Observation) {
				o.ResourceDistance = 100
				o.EnemyDistance = 59
			},
			expected: Anger,
		},
		{
			name: "player attack near companion",
			mutate: func(o *Observation) {
				o.Intent = IntentAttack
				o.PlayerX, o.PlayerY = 100, 100
				o.CompanionX, o.CompanionY = 110, 100
			},
			expected: Surprise,
		},
		{
			name: "attack far from companion has no effect",
			mutate: func(o *Observation) {
				o.Intent = IntentAttack
				o.PlayerX, o.PlayerY = 100, 100
				o.CompanionX, o.CompanionY = 400, 100
			},
			expected: Anticipation,
		},
		{
			name: "low health overrides everything",
			mutate: func(o *Observation) {
				o.PlayerHealth = 30
				o.ResourceDistance = 10
				o.EnemyDistance = 10
				o.Intent = IntentAttack
			},
			expected: Sadness,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := base
			tc.mutate(&obs)
			if got := Rules(obs); got != tc.expected {
				t.Errorf("Rules() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEmotionStringRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for e := Anticipation; e <= Sadness; e++ {
		s := e.String()
		if s == "unknown" {
			t.Errorf("emotion %d has no label", e)
		}
		if seen[s] {
			t.Errorf("duplicate label %q", s)
		}
		seen[s] = true
		if !e.Valid() {
			t.Errorf("emotion %v reported invalid", e)
		}
	}

	if Emotion(99).Valid() {
		t.Error("out-of-range emotion reported valid")
	}
}
