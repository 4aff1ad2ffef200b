package factory

import (
	"github.com/automoto/torch/archetypes"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/leveldata"
	"github.com/automoto/torch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateDummy spawns a training dummy. Zero values in spawn fall back to
// config.Dummy.
func CreateDummy(w donburi.World, spawn leveldata.DummySpawn) *donburi.Entry {
	dummy := archetypes.Dummy.Spawn(w)

	width, height := cfg.Dummy.CollisionWidth, cfg.Dummy.CollisionHeight
	obj := resolv.NewObject(spawn.X, spawn.Y, width, height)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.AddTags("character", tags.ResolvDummy)
	obj.Data = dummy
	components.Object.SetValue(dummy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	health := spawn.Health
	if health <= 0 {
		health = cfg.Dummy.Health
	}
	invuln := spawn.InvulnFrames
	if invuln <= 0 {
		invuln = cfg.Dummy.InvulnFrames
	}
	canKnockback := cfg.Dummy.CanKnockback
	if spawn.CanKnockback != nil {
		canKnockback = *spawn.CanKnockback
	}
	name := spawn.Name
	if name == "" {
		name = "dummy"
	}

	components.Dummy.SetValue(dummy, components.DummyData{
		Name:         name,
		CanKnockback: canKnockback,
		InvulnOnHit:  invuln,
		HomeX:        spawn.X,
		HomeY:        spawn.Y,
	})
	components.Physics.SetValue(dummy, components.PhysicsData{
		Friction: cfg.Movement.KnockbackFriction,
		MaxSpeed: cfg.Movement.MaxKnockbackSpeed,
	})
	components.Health.SetValue(dummy, components.HealthData{
		Current: float64(health),
		Max:     float64(health),
	})

	return dummy
}
