package sim

import "github.com/vovakirdan/npc-quest/internal/core"

// blocked reports whether a mover of the given size at pos overlaps any
// obstacle. Both are treated as circles around their centers.
func (w *World) blocked(pos core.Vec2, size float64) bool {
	limit := (w.cfg.Obstacles.Size + size) / 2
	for _, o := range w.obstacles {
		if core.Dist(pos, o.Pos) < limit {
			return true
		}
	}
	return false
}

// clampToRoom keeps a mover of the given size fully inside its room.
func (w *World) clampToRoom(pos core.Vec2, room int, size float64) core.Vec2 {
	r := w.rooms[room].Inset(size / 2)
	return r.ClampPoint(pos)
}

// moveEntity attempts a move, reverting on obstacle contact and clamping
// to the room. It returns the resulting position and whether the entity
// actually moved.
func (w *World) moveEntity(pos core.Vec2, delta core.Vec2, room int, size float64) (core.Vec2, bool) {
	next := pos.Add(delta)
	if w.blocked(next, size) {
		return pos, false
	}
	next = w.clampToRoom(next, room, size)
	return next, next != pos
}
