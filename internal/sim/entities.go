package sim

import (
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// Room indices. Positions are always in world units; every entity also
// carries the room it currently belongs to.
const (
	Room1 = 0
	Room2 = 1
)

// Player is the participant-controlled entity.
type Player struct {
	Pos    core.Vec2
	Room   int
	Health float64
}

// Companion is the NPC whose emotion drives its behavior.
type Companion struct {
	Pos     core.Vec2
	Room    int
	Emotion emotion.Emotion

	attackCooldown int
}

// Enemy is a hostile entity bound to one room.
type Enemy struct {
	Pos    core.Vec2
	Room   int
	Speed  float64
	Health float64
	Alive  bool
}

// Resource is a collectible pickup bound to one room.
type Resource struct {
	Pos       core.Vec2
	Room      int
	Collected bool
}

// Obstacle is a static square blocker.
type Obstacle struct {
	Pos  core.Vec2
	Room int
}

const (
	fullHealth  = 100.0
	enemyHealth = 100.0
)
