package systems

import (
	"math"

	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/automoto/torch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighter turns input into facing, walking and dashing. The combat
// controller gates all three through the Movement component.
func UpdateFighter(ecs *ecs.ECS) {
	dt := tickDelta(ecs)
	if dt <= 0 {
		return
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		move := components.Movement.Get(e)
		physics := components.Physics.Get(e)
		fighter := components.Fighter.Get(e)

		if move.Enabled && input.MoveX != 0 {
			fighter.Direction.X = math.Copysign(1, input.MoveX)
		}

		if input.Dash.JustPressed && move.DashEnabled && move.DashRemaining <= 0 {
			move.DashRemaining = cfg.Movement.DashDuration
			move.DashDirection = fighter.Direction.X
		}

		switch {
		case move.DashRemaining > 0:
			physics.SpeedX = move.DashDirection * cfg.Movement.DashSpeed
			move.DashRemaining = math.Max(0, move.DashRemaining-dt)
		case move.Enabled && input.MoveX != 0:
			physics.SpeedX = input.MoveX * cfg.Movement.WalkSpeed * move.SpeedScalar
		default:
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
		}
	})
}
