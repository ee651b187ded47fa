package sim

import (
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// Frame is a read-only view of the world for rendering. It copies the
// entity slices so the renderer never observes a half-stepped world.
type Frame struct {
	Rooms [2]core.Rect
	Door  core.Rect
	Exit  core.Rect

	DoorOpen         bool
	DoorUnlockEffect bool
	ExitOpen         bool

	Player    Player
	Companion Companion
	Reaction  emotion.Reaction
	Enemies   []Enemy
	Resources []Resource
	Obstacles []Obstacle

	ResourcesCollected int
	EnemiesKilled      int
	Deaths             int

	Tick             int
	RemainingSeconds float64
	Done             bool
	Completed        bool
}

// Frame returns the current render snapshot.
func (w *World) Frame() Frame {
	remaining := float64(w.timeLimitTicks()-w.tick) / float64(w.runtime.TickRate)
	if remaining < 0 {
		remaining = 0
	}

	return Frame{
		Rooms:    w.rooms,
		Door:     w.door,
		Exit:     w.exit,
		DoorOpen:         w.doorOpen,
		DoorUnlockEffect: w.doorUnlockEffect,
		ExitOpen:         w.exitOpen,

		Player:    w.player,
		Companion: w.companion,
		Reaction:  w.companion.Emotion.Reaction(),
		Enemies:   append([]Enemy(nil), w.enemies...),
		Resources: append([]Resource(nil), w.resources...),
		Obstacles: append([]Obstacle(nil), w.obstacles...),

		ResourcesCollected: w.resourcesCollected,
		EnemiesKilled:      w.enemiesKilled,
		Deaths:             w.deaths,

		Tick:             w.tick,
		RemainingSeconds: remaining,
		Done:             w.done,
		Completed:        w.completed,
	}
}

// Result summarizes a finished (or abandoned) session for persistence.
type Result struct {
	Strategy           string
	ResourcesCollected int
	EnemiesKilled      int
	Deaths             int
	Health             float64
	Completed          bool
	EndReason          string
	ElapsedSeconds     float64
}

// Result returns the session summary. Meaningful once Done is true, but
// safe to call at any point.
func (w *World) Result() Result {
	return Result{
		Strategy:           w.strategy.Name(),
		ResourcesCollected: w.resourcesCollected,
		EnemiesKilled:      w.enemiesKilled,
		Deaths:             w.deaths,
		Health:             w.player.Health,
		Completed:          w.completed,
		EndReason:          w.endReason,
		ElapsedSeconds:     float64(w.tick) / float64(w.runtime.TickRate),
	}
}
