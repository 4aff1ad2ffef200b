package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// KnockbackVelocity returns the unit direction from attacker to target scaled
// by speed. Coincident origins push along fallbackSign on the X axis.
func KnockbackVelocity(attacker, target math.Vec2, speed float64, fallbackSign int) math.Vec2 {
	dirX := target.X - attacker.X
	dirY := target.Y - attacker.Y
	dist := stdmath.Sqrt(dirX*dirX + dirY*dirY)
	if dist == 0 {
		return math.Vec2{X: float64(fallbackSign) * speed}
	}
	return math.Vec2{X: (dirX / dist) * speed, Y: (dirY / dist) * speed}
}
