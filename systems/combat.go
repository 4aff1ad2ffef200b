package systems

import (
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat advances every combat controller by the scaled tick delta.
// A frozen hit-stop tick reaches the controllers as a zero delta.
func UpdateCombat(ecs *ecs.ECS) {
	dt := tickDelta(ecs)
	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Melee.Get(e).Controller
		if ctrl == nil {
			return
		}
		before := ctrl.Phase()
		ctrl.Advance(dt)
		if ctrl.Phase() == combat.PhaseStartup && before != combat.PhaseStartup {
			PlaySFX(ecs, cfg.SoundSwing)
		}
	})
}

// UpdateDamage applies queued damage events to Health, then removes them so
// each is processed once.
func UpdateDamage(ecs *ecs.ECS) {
	for e := range components.DamageEvent.Iter(ecs.World) {
		dmg := components.DamageEvent.Get(e)

		if e.HasComponent(components.Health) {
			hp := components.Health.Get(e)
			hp.Current -= dmg.Amount
			if hp.Current < 0 {
				hp.Current = 0
			}
		}

		if e.HasComponent(components.Dummy) {
			showHealthBar(e)
			TriggerHitFlash(e)
		}

		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func showHealthBar(e *donburi.Entry) {
	bar := components.HealthBarData{TimeToLive: cfg.Combat.HealthBarDuration}
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.SetValue(e, bar)
		return
	}
	donburi.Add(e, components.HealthBar, &bar)
}
