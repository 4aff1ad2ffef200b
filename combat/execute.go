package combat

import (
	"github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
)

type latchKey struct {
	hitbox int
	target uint64
}

// executeHitbox resolves one hitbox of the current attack and lands it on
// every overlapping target at most once for this call.
func (c *Controller) executeHitbox(index int, entry config.HitboxEntry, profile config.AttackProfile) {
	origin := c.deps.Attacker.Origin()
	world := gamemath.WorldRect(entry.Rect, origin, c.facingSign)
	c.activeHitboxes = append(c.activeHitboxes, world)

	clear(c.hitThisActivation)
	latch := c.frames.Reapplication == config.ReapplyLatch

	for _, t := range c.resolver.FindOverlapping(world, c.deps.Targets.Targets()) {
		id := t.ID()
		if c.hitThisActivation[id] {
			continue
		}
		key := latchKey{hitbox: index, target: id}
		if latch && c.latched[key] {
			continue
		}
		c.hitThisActivation[id] = true
		if latch {
			c.latched[key] = true
		}

		evt := HitEvent{
			Attack:   c.attack,
			Hitbox:   index,
			TargetID: id,
			Damage:   profile.Damage,
			Region:   world,
		}

		// Eligibility may change between resolution and application.
		if t.CanTakeDamage() {
			t.TakeDamage(profile.Damage)
			evt.Damaged = true
		}

		if t.CanKnockback() {
			v := gamemath.KnockbackVelocity(origin, t.Origin(), profile.KnockbackSpeed, c.facingSign)
			t.ReceiveKnockback(profile.KnockbackDuration, v)
			evt.Knockback = v
		}

		c.events.Emit(evt)
	}
}

// executeSpecial hands the Special's hitboxes to the special handler. They
// deal no damage on their own.
func (c *Controller) executeSpecial(profile config.AttackProfile) {
	origin := c.deps.Attacker.Origin()
	for _, entry := range profile.Hitboxes {
		world := gamemath.WorldRect(entry.Rect, origin, c.facingSign)
		c.activeHitboxes = append(c.activeHitboxes, world)
		if c.special != nil {
			c.special(c, world)
		}
	}
}
