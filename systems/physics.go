package systems

import (
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/automoto/torch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies knockback and friction to knocked-back bodies, then
// moves every body through the arena's solids.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickDelta(ecs)
	if dt <= 0 {
		return
	}

	tags.Dummy.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		kb := components.Knockback.Get(e)

		if kb.Remaining > 0 {
			// Knockback overrides velocity for its duration
			tps := float64(cfg.C.TPS)
			physics.SpeedX = kb.Velocity.X * tps
			physics.SpeedY = kb.Velocity.Y * tps
			kb.Remaining -= dt
			if kb.Remaining <= 0 {
				kb.Remaining = 0
			}
		} else {
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
			physics.SpeedY = gamemath.ApplyFriction(physics.SpeedY, physics.Friction*dt)
		}
	})

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)
		physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, physics.MaxSpeed)

		obj := components.Object.Get(e)
		resolveHorizontalCollision(physics, obj, physics.SpeedX*dt)
		resolveVerticalCollision(physics, obj, physics.SpeedY*dt)
	})
}
