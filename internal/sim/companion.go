package sim

import (
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// updateCompanion runs one tick of companion behavior. The current
// emotion selects the reaction; the reaction decides movement and any
// attack or heal. Movement reverts on obstacles and clamps to the room.
func (w *World) updateCompanion() {
	c := &w.companion
	if c.attackCooldown > 0 {
		c.attackCooldown--
	}

	var moved bool
	switch c.Emotion.Reaction() {
	case emotion.AttackEnemy:
		moved = w.companionAttack()
	case emotion.ProvideHealing:
		moved = w.companionHeal()
	case emotion.NotifyResource, emotion.NotifyDanger, emotion.NotifySurprise:
		moved = w.companionNotify()
	default:
		moved = w.companionFollow()
	}

	if !moved {
		c.Pos = c.Pos.Round()
	}
}

// companionFollow keeps the companion inside its follow envelope: close
// the gap quickly when trailing far behind, back off gently when the
// player crowds it, drift closer otherwise.
func (w *World) companionFollow() bool {
	c := &w.companion
	cc := w.cfg.Companion
	d := core.Dist(c.Pos, w.player.Pos)
	dir := w.player.Pos.Sub(c.Pos).Norm()
	speed := w.cfg.Entities.CompanionSpeed

	var delta core.Vec2
	switch {
	case d > cc.IdealDistance+10:
		delta = dir.Scale(speed * 1.5)
	case d < cc.MinDistance:
		delta = dir.Scale(-speed * 0.5)
	case d > cc.IdealDistance+5:
		delta = dir.Scale(speed)
	default:
		return false
	}
	return w.companionMove(delta)
}

// companionNotify closes toward the player so the notification reads as
// directed at them, then holds position.
func (w *World) companionNotify() bool {
	c := &w.companion
	cc := w.cfg.Companion
	if core.Dist(c.Pos, w.player.Pos) <= cc.IdealDistance*1.5 {
		return false
	}
	dir := w.player.Pos.Sub(c.Pos).Norm()
	return w.companionMove(dir.Scale(w.cfg.Entities.CompanionSpeed * 1.2))
}

// companionAttack hunts the nearest enemy in the room, striking on a
// cooldown once strictly inside the attack radius. Between the radius
// and the approach margin it waits; with no target it holds position.
func (w *World) companionAttack() bool {
	c := &w.companion
	radius := w.cfg.Combat.AttackRadius

	idx := w.nearestEnemy(c.Pos, c.Room, float64(emotion.DistanceSentinel))
	if idx < 0 {
		return false
	}

	target := &w.enemies[idx]
	d := core.Dist(c.Pos, target.Pos)
	if d > radius+5 {
		dir := target.Pos.Sub(c.Pos).Norm()
		return w.companionMove(dir.Scale(w.cfg.Entities.CompanionSpeed * 1.2))
	}

	if d < radius && c.attackCooldown == 0 {
		target.Health -= w.cfg.Combat.CompanionDamage
		c.attackCooldown = w.cfg.Companion.AttackCooldownTicks
		if target.Health <= 0 {
			target.Alive = false
			w.enemiesKilled++
			w.logger.Debug("companion kill", "total", w.enemiesKilled)
		}
	}
	return false
}

// companionHeal moves into healing range and restores player health.
func (w *World) companionHeal() bool {
	c := &w.companion
	radius := w.cfg.Combat.AttackRadius

	if d := core.Dist(c.Pos, w.player.Pos); d > radius+5 {
		dir := w.player.Pos.Sub(c.Pos).Norm()
		return w.companionMove(dir.Scale(w.cfg.Entities.CompanionSpeed * 1.5))
	}

	w.player.Health = core.ClampF(w.player.Health+w.cfg.Combat.CompanionHeal, 0, fullHealth)
	return false
}

func (w *World) companionMove(delta core.Vec2) bool {
	c := &w.companion
	var moved bool
	c.Pos, moved = w.moveEntity(c.Pos, delta, c.Room, w.cfg.Entities.CompanionSize)
	return moved
}
