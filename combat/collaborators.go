// Package combat is the melee combat core: a frame-driven state machine that
// turns attack input into startup, active and recovery phases and resolves
// hitboxes against targets. It never looks collaborators up on its own; the
// host hands them over at construction.
package combat

import (
	"iter"

	"github.com/automoto/torch/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Command is an edge-triggered combat input.
type Command int

const (
	CommandLightChain Command = iota
	CommandThrust
	CommandSpecial
	CommandCancel
	CommandCount // Must be last - used for array sizing
)

// Attacker is the character performing attacks.
type Attacker interface {
	FacingRight() bool
	Origin() math.Vec2
}

// Movement is the host movement component the controller locks and scales.
type Movement interface {
	MovementEnabled() bool
	SetMovementEnabled(enabled bool)
	DashEnabled() bool
	SetDashEnabled(enabled bool)
	SpeedScalar() float64
	SetSpeedScalar(scalar float64)
	// SetDashRemaining overwrites the time left on an in-progress dash.
	SetDashRemaining(seconds float64)
}

// Target is something a hitbox can land on. ID must be stable for the
// target's lifetime.
type Target interface {
	ID() uint64
	HitRegion() gamemath.Rect
	Origin() math.Vec2
	CanTakeDamage() bool
	TakeDamage(amount float64)
	CanKnockback() bool
	ReceiveKnockback(duration float64, velocity math.Vec2)
}

// TargetRegistry enumerates the live targets. Order is irrelevant.
type TargetRegistry interface {
	Targets() iter.Seq[Target]
}

// InputSource reports commands pressed this tick.
type InputSource interface {
	JustPressed(cmd Command) bool
}

// SpecialHandler receives each world-space Special hitbox while the Special is
// active. Projectile interaction and countering hook in here.
type SpecialHandler func(c *Controller, hitbox gamemath.Rect)

// Collaborators bundles everything the controller depends on.
type Collaborators struct {
	Attacker Attacker
	Movement Movement
	Targets  TargetRegistry
	Input    InputSource
}
