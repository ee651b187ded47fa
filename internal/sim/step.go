package sim

import (
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// Door push-back distance when the player bumps a locked door.
const doorNudge = 10.0

// Step advances the simulation by one tick. Order matters: the player
// acts first, then the companion decides its emotion from the resulting
// situation, then companion and enemies move, then pickups and gates
// are resolved.
func (w *World) Step(in core.InputFrame) {
	if w.done {
		return
	}

	laggedIntent := w.prevIntent
	intent := intentOf(in)

	w.applyInput(in)

	obs := w.observe(intent, laggedIntent)
	next, err := w.strategy.Decide(obs)
	if err != nil {
		w.logger.Warn("emotion decision failed, holding previous",
			"strategy", w.strategy.Name(), "err", err)
		next = w.companion.Emotion
	}
	w.companion.Emotion = next
	w.prevIntent = intent

	w.updateCompanion()
	w.updateEnemies()
	w.collectResources()
	w.checkExit()
	w.checkTermination()

	w.tick++
}

// intentOf classifies the input frame for the decision strategies.
func intentOf(in core.InputFrame) emotion.Intent {
	switch {
	case in.Has(core.ActionAttack):
		return emotion.IntentAttack
	case in.Has(core.ActionUp) || in.Has(core.ActionDown) ||
		in.Has(core.ActionLeft) || in.Has(core.ActionRight):
		return emotion.IntentMove
	default:
		return emotion.IntentIdle
	}
}

// applyInput moves the player, handles door traversal and resolves the
// attack action.
func (w *World) applyInput(in core.InputFrame) {
	speed := w.cfg.Entities.PlayerSpeed
	var delta core.Vec2
	if in.Has(core.ActionUp) {
		delta.Y -= speed
	}
	if in.Has(core.ActionDown) {
		delta.Y += speed
	}
	if in.Has(core.ActionLeft) {
		delta.X -= speed
	}
	if in.Has(core.ActionRight) {
		delta.X += speed
	}

	if delta != (core.Vec2{}) && !w.tryDoorCrossing(delta) {
		w.player.Pos, _ = w.moveEntity(w.player.Pos, delta, w.player.Room, w.cfg.Entities.PlayerSize)
	}

	if in.Has(core.ActionAttack) {
		w.playerAttack()
	}
}

// tryDoorCrossing handles the player pushing into the doorway band at the
// shared wall. An open door teleports the player (and companion) to the
// other room; a locked door pushes the player back.
func (w *World) tryDoorCrossing(delta core.Vec2) bool {
	next := w.player.Pos.Add(delta)
	if next.Y < w.door.Y || next.Y > w.door.Bottom() {
		return false
	}

	half := w.cfg.Entities.PlayerSize / 2
	room := w.rooms[w.player.Room]

	switch {
	case w.player.Room == Room1 && next.X > room.Right()-half:
		return w.crossDoor(Room2, -doorNudge)
	case w.player.Room == Room2 && next.X < room.X+half:
		return w.crossDoor(Room1, doorNudge)
	default:
		return false
	}
}

// crossDoor reports whether it consumed the move. A locked door nudges
// the player back; during the transition cooldown the doorway is inert
// and the move resolves as ordinary clamped motion.
func (w *World) crossDoor(dest int, nudge float64) bool {
	if !w.doorOpen {
		w.player.Pos.X += nudge
		w.player.Pos = w.clampToRoom(w.player.Pos, w.player.Room, w.cfg.Entities.PlayerSize)
		return true
	}
	if w.tick < w.doorReadyTick {
		return false
	}

	midY := w.rooms[dest].Y + w.cfg.World.RoomHeight/2
	if dest == Room2 {
		w.player.Pos = core.Vec2{X: w.rooms[Room2].X + 50, Y: midY}
	} else {
		w.player.Pos = core.Vec2{X: w.rooms[Room1].Right() - 50, Y: midY}
	}
	w.player.Room = dest
	w.companion.Pos = core.Vec2{X: w.player.Pos.X - 30, Y: w.player.Pos.Y}
	w.companion.Room = dest
	w.doorUnlockEffect = false
	w.doorReadyTick = w.tick + w.doorCooldownTicks()

	w.logger.Debug("door crossed", "room", dest+1, "tick", w.tick)
	return true
}

// playerAttack hits every living in-room enemy within attack range.
// Player hits are decisive; enemies do not survive them.
func (w *World) playerAttack() {
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive || e.Room != w.player.Room {
			continue
		}
		if core.Dist(w.player.Pos, e.Pos) >= w.cfg.Combat.AttackRadius {
			continue
		}
		e.Health -= w.cfg.Combat.PlayerDamage
		if e.Health <= 0 {
			e.Alive = false
			w.enemiesKilled++
		}
	}
}

// nearestEnemy returns the index of the closest living enemy in the room
// within maxDist, or -1.
func (w *World) nearestEnemy(from core.Vec2, room int, maxDist float64) int {
	best := -1
	bestDist := maxDist
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive || e.Room != room {
			continue
		}
		if d := core.Dist(from, e.Pos); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// observe builds the strategy input from the player's current situation.
// Distances use a far sentinel when nothing qualifies.
func (w *World) observe(intent, laggedIntent emotion.Intent) emotion.Observation {
	enemyDist := float64(emotion.DistanceSentinel)
	if idx := w.nearestEnemy(w.player.Pos, w.player.Room, enemyDist); idx >= 0 {
		enemyDist = core.Dist(w.player.Pos, w.enemies[idx].Pos)
	}

	resDist := float64(emotion.DistanceSentinel)
	for i := range w.resources {
		r := &w.resources[i]
		if r.Collected || r.Room != w.player.Room {
			continue
		}
		if d := core.Dist(w.player.Pos, r.Pos); d < resDist {
			resDist = d
		}
	}

	return emotion.Observation{
		PlayerHealth:       w.player.Health,
		EnemyDistance:      enemyDist,
		ResourceDistance:   resDist,
		Room:               w.player.Room + 1,
		PlayerX:            w.player.Pos.X,
		PlayerY:            w.player.Pos.Y,
		CompanionX:         w.companion.Pos.X,
		CompanionY:         w.companion.Pos.Y,
		ResourcesCollected: w.resourcesCollected,
		EnemiesKilled:      w.enemiesKilled,
		Intent:             intent,
		LaggedIntent:       laggedIntent,
		LaggedEmotion:      w.companion.Emotion,
	}
}

// collectResources picks up any resource the player touches, heals the
// player and opens the door once enough have been gathered. The door
// never re-locks; opening raises an unlock effect that lasts until the
// first traversal.
func (w *World) collectResources() {
	pickupDist := w.cfg.Combat.AttackRadius
	for i := range w.resources {
		r := &w.resources[i]
		if r.Collected || r.Room != w.player.Room {
			continue
		}
		if core.Dist(w.player.Pos, r.Pos) >= pickupDist {
			continue
		}
		r.Collected = true
		w.resourcesCollected++
		w.player.Health = core.ClampF(w.player.Health+w.cfg.Combat.ResourceHeal, 0, fullHealth)
		w.logger.Debug("resource collected", "total", w.resourcesCollected)
	}

	if !w.doorOpen && w.resourcesCollected >= w.cfg.Progression.DoorResources {
		w.doorOpen = true
		w.doorUnlockEffect = true
		w.logger.Info("door opened", "resources", w.resourcesCollected)
	}
}

// checkExit finishes the session when the player stands in the exit area
// with the required kills and resources. The exit marker unlocks as soon
// as the thresholds are met and stays unlocked.
func (w *World) checkExit() {
	gate := w.cfg.Progression
	if !w.exitOpen && w.enemiesKilled >= gate.ExitKills && w.resourcesCollected >= gate.ExitResources {
		w.exitOpen = true
		w.logger.Info("exit unlocked", "kills", w.enemiesKilled, "resources", w.resourcesCollected)
	}

	if w.exitOpen && w.player.Room == Room2 && w.exit.Contains(w.player.Pos) {
		w.done = true
		w.completed = true
		w.endReason = EndReasonCompleted
	}
}

// checkTermination handles death respawn and the session time limit.
func (w *World) checkTermination() {
	if w.done {
		return
	}
	if w.player.Health <= 0 {
		w.respawn()
		return
	}
	if limit := w.timeLimitTicks(); limit > 0 && w.tick+1 >= limit {
		w.done = true
		w.completed = false
		w.endReason = EndReasonTimeout
	}
}
