package systems

import (
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitStop advances the hit-stop clock and stores this tick's time
// scale. Must run before every system that reads tickDelta.
func UpdateHitStop(ecs *ecs.ECS) {
	e, ok := components.HitStop.First(ecs.World)
	if !ok {
		return
	}
	hs := components.HitStop.Get(e)
	hs.TimeScale = hs.Clock.Scale(FrameDelta())
}

// OnHit returns the hit handler for the arena: it starts hit-stop and
// queues the impact sound.
func OnHit(ecs *ecs.ECS) combat.HitHandler {
	return func(evt combat.HitEvent) {
		if !evt.Damaged {
			return
		}
		if cfg.Combat.HitStopFrames > 0 {
			if e, ok := components.HitStop.First(ecs.World); ok {
				components.HitStop.Get(e).Clock.Trigger(cfg.Combat.HitStopFrames)
			}
		}
		PlaySFX(ecs, cfg.SoundHit)
	}
}
