package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// KnockbackData overrides a body's velocity for a short time after a hit.
type KnockbackData struct {
	Remaining float64 // seconds
	Velocity  math.Vec2
}

var Knockback = donburi.NewComponentType[KnockbackData]()
