package sim

import (
	"math"

	"github.com/vovakirdan/npc-quest/internal/core"
)

// Chance that a fully blocked chaser picks a fresh random heading
// instead of standing still for the tick.
const unstickChance = 0.3

// updateEnemies runs one tick of enemy behavior: wander jitter outside
// detection range, pursuit with an axis fallback chain inside it, and
// contact damage when an enemy reaches the player. Only enemies in the
// player's current room act; the other room stays frozen.
func (w *World) updateEnemies() {
	damagePerTick := w.cfg.Combat.EnemyDamagePerSecond / float64(w.runtime.TickRate)

	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive || e.Room != w.player.Room {
			continue
		}

		if core.Dist(e.Pos, w.player.Pos) < w.cfg.Combat.DetectionRadius {
			w.chasePlayer(e)
		} else {
			w.wander(e)
		}

		if core.Dist(e.Pos, w.player.Pos) < w.cfg.Combat.AttackRadius {
			w.player.Health = core.ClampF(w.player.Health-damagePerTick, 0, fullHealth)
		}
	}
}

// wander applies small random jitter so idle enemies do not read as
// frozen.
func (w *World) wander(e *Enemy) {
	delta := core.Vec2{
		X: (w.rng.Float64() - 0.5) * e.Speed,
		Y: (w.rng.Float64() - 0.5) * e.Speed,
	}
	e.Pos, _ = w.moveEntity(e.Pos, delta, e.Room, w.cfg.Entities.EnemySize)
}

// chasePlayer moves the enemy toward the player, degrading gracefully
// around obstacles: full vector first, then horizontal only, then
// vertical only, then occasionally a random heading to break free.
func (w *World) chasePlayer(e *Enemy) {
	dir := w.player.Pos.Sub(e.Pos).Norm()
	size := w.cfg.Entities.EnemySize

	candidates := []core.Vec2{
		dir.Scale(e.Speed),
		{X: dir.X * e.Speed},
		{Y: dir.Y * e.Speed},
	}
	for _, delta := range candidates {
		if delta == (core.Vec2{}) {
			continue
		}
		if next, moved := w.moveEntity(e.Pos, delta, e.Room, size); moved {
			e.Pos = next
			return
		}
	}

	if w.rng.Float64() < unstickChance {
		angle := w.rng.Float64() * 2 * math.Pi
		delta := core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(e.Speed)
		e.Pos, _ = w.moveEntity(e.Pos, delta, e.Room, size)
	}
}
