package sim

import "github.com/vovakirdan/npc-quest/internal/core"

// Placement tuning. Obstacles keep 1.5x their size between each other;
// entities spawn with extra clearance around every obstacle so nothing
// starts wedged against a blocker.
const (
	obstacleSeparationFactor = 1.5
	spawnClearance           = 30.0
	sampleInset              = 40.0
	obstacleAttempts         = 50
	positionAttempts         = 100
)

// generateObstacles fills one room with a random number of obstacles,
// keeping the spawn area, the door approaches and the exit area clear.
func (w *World) generateObstacles(room int) {
	oc := w.cfg.Obstacles
	count := oc.MinCount + w.rng.Intn(oc.MaxCount-oc.MinCount+1)
	safe := w.safeZones(room)
	r := w.rooms[room]

	for i := 0; i < count; i++ {
		for attempt := 0; attempt < obstacleAttempts; attempt++ {
			pos := core.Vec2{
				X: r.X + oc.Size + w.rng.Float64()*(r.W-2*oc.Size),
				Y: r.Y + oc.Size + w.rng.Float64()*(r.H-2*oc.Size),
			}
			if w.inSafeZone(pos, safe) || w.nearObstacle(pos, oc.Size*obstacleSeparationFactor) {
				continue
			}
			w.obstacles = append(w.obstacles, Obstacle{Pos: pos, Room: room})
			break
		}
	}
}

// safeZones returns the rectangles that must stay free of obstacles:
// the spawn corner and door approach in room 1, the door entry and exit
// area in room 2.
func (w *World) safeZones(room int) []core.Rect {
	r := w.rooms[room]
	midY := r.Y + r.H/2
	if room == Room1 {
		return []core.Rect{
			core.NewRect(r.X+100, r.Y+100, 150, 150),
			core.NewRect(r.Right()-150, midY-100, 150, 200),
		}
	}
	return []core.Rect{
		core.NewRect(r.X, midY-100, 150, 200),
		core.NewRect(r.Right()-150, midY-100, 150, 200),
	}
}

func (w *World) inSafeZone(pos core.Vec2, zones []core.Rect) bool {
	for _, z := range zones {
		if z.Contains(pos) {
			return true
		}
	}
	return false
}

func (w *World) nearObstacle(pos core.Vec2, minDist float64) bool {
	for _, o := range w.obstacles {
		if core.Dist(pos, o.Pos) < minDist {
			return true
		}
	}
	return false
}

// validPosition samples a spawn point inside the room that keeps clear
// of every obstacle. After too many rejections it falls back to a fixed
// point near the room corner.
func (w *World) validPosition(room int) core.Vec2 {
	r := w.rooms[room]
	clearance := w.cfg.Obstacles.Size + spawnClearance

	for attempt := 0; attempt < positionAttempts; attempt++ {
		pos := core.Vec2{
			X: r.X + sampleInset + w.rng.Float64()*(r.W-2*sampleInset),
			Y: r.Y + sampleInset + w.rng.Float64()*(r.H-2*sampleInset),
		}
		if !w.nearObstacle(pos, clearance) {
			return pos
		}
	}
	return core.Vec2{X: r.X + 150, Y: r.Y + 150}
}
