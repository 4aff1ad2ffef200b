package systems

import (
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDummies counts down invulnerability and flashes, defeats emptied
// dummies and refills them at home once their respawn timer runs out.
func UpdateDummies(ecs *ecs.ECS) {
	if tickDelta(ecs) <= 0 {
		return
	}

	tags.Dummy.Each(ecs.World, func(e *donburi.Entry) {
		dummy := components.Dummy.Get(e)
		hp := components.Health.Get(e)

		if dummy.InvulnFrames > 0 {
			dummy.InvulnFrames--
		}
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			flash.Duration--
		}
		if e.HasComponent(components.HealthBar) {
			bar := components.HealthBar.Get(e)
			bar.TimeToLive--
			if bar.TimeToLive <= 0 {
				donburi.Remove[components.HealthBarData](e, components.HealthBar)
			}
		}

		if !dummy.Defeated && hp.Current <= 0 {
			dummy.Defeated = true
			dummy.RespawnTimer = cfg.Dummy.RespawnFrames
			PlaySFX(ecs, cfg.SoundBreak)
			return
		}

		if dummy.Defeated {
			dummy.RespawnTimer--
			if dummy.RespawnTimer <= 0 {
				respawnDummy(e)
			}
		}
	})
}

func respawnDummy(e *donburi.Entry) {
	dummy := components.Dummy.Get(e)
	hp := components.Health.Get(e)
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)

	dummy.Defeated = false
	dummy.RespawnTimer = 0
	dummy.InvulnFrames = 0
	hp.Current = hp.Max
	obj.X, obj.Y = dummy.HomeX, dummy.HomeY
	physics.SpeedX, physics.SpeedY = 0, 0
	components.Knockback.SetValue(e, components.KnockbackData{})
}
