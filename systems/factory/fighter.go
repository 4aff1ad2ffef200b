package factory

import (
	"fmt"

	"github.com/automoto/torch/actors"
	"github.com/automoto/torch/archetypes"
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns the player fighter at x, y (top-left of its body)
// and builds its combat controller over frames.
func CreateFighter(w donburi.World, x, y float64, frames *cfg.FrameData, opts ...combat.Option) (*donburi.Entry, error) {
	fighter := archetypes.Fighter.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Fighter.CollisionWidth, cfg.Fighter.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.CollisionWidth, cfg.Fighter.CollisionHeight))
	obj.AddTags("character", tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	components.Fighter.SetValue(fighter, components.FighterData{
		Direction: components.Vector{X: cfg.DirectionRight},
		SpawnX:    x,
		SpawnY:    y,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Friction: cfg.Movement.Friction,
		MaxSpeed: cfg.Movement.DashSpeed,
	})
	components.Movement.SetValue(fighter, components.MovementData{
		Enabled:     true,
		DashEnabled: true,
		SpeedScalar: 1,
	})

	opts = append([]combat.Option{
		combat.WithResolver(combat.NewResolver(cfg.Combat.SpaceWidth, cfg.Combat.SpaceHeight, cfg.Combat.SpaceCellSize)),
		combat.WithDashCut(cfg.Combat.DashTruncateEpsilon),
	}, opts...)
	ctrl, err := combat.NewController(frames, actors.NewFighter(fighter).Collaborators(), opts...)
	if err != nil {
		w.Remove(fighter.Entity())
		return nil, fmt.Errorf("create fighter: %w", err)
	}
	components.Melee.SetValue(fighter, components.MeleeData{Controller: ctrl})
	addToSpace(w, obj)

	return fighter, nil
}
