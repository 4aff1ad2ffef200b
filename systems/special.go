package systems

import (
	"github.com/automoto/torch/actors"
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnSpecial returns the arena's Special handler. Nothing in the arena can
// be countered, so dummies inside the hitbox only flash.
func OnSpecial(ecs *ecs.ECS) combat.SpecialHandler {
	dummies := actors.NewDummies(ecs.World)
	return func(c *combat.Controller, hitbox gamemath.Rect) {
		for _, t := range c.Resolver().FindOverlapping(hitbox, dummies.Targets()) {
			e := ecs.World.Entry(donburi.Entity(t.ID()))
			if e.Valid() {
				TriggerHitFlash(e)
			}
		}
	}
}
