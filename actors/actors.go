// Package actors adapts donburi entries to the combat collaborator
// interfaces.
package actors

import (
	"iter"

	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/automoto/torch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Fighter wraps a fighter entry. It is the attacker, its movement and its
// input source.
type Fighter struct {
	entry *donburi.Entry
}

// NewFighter wraps e, which must carry the Fighter archetype's components.
func NewFighter(e *donburi.Entry) *Fighter {
	return &Fighter{entry: e}
}

// Collaborators returns the fighter's side of the combat wiring. Targets
// are the dummies in the fighter's world.
func (f *Fighter) Collaborators() combat.Collaborators {
	return combat.Collaborators{
		Attacker: f,
		Movement: f,
		Targets:  NewDummies(f.entry.World),
		Input:    f,
	}
}

func (f *Fighter) FacingRight() bool {
	return components.Fighter.Get(f.entry).Direction.X >= 0
}

func (f *Fighter) Origin() math.Vec2 {
	return bodyCenter(f.entry)
}

func (f *Fighter) MovementEnabled() bool {
	return components.Movement.Get(f.entry).Enabled
}

func (f *Fighter) SetMovementEnabled(enabled bool) {
	components.Movement.Get(f.entry).Enabled = enabled
}

func (f *Fighter) DashEnabled() bool {
	return components.Movement.Get(f.entry).DashEnabled
}

func (f *Fighter) SetDashEnabled(enabled bool) {
	components.Movement.Get(f.entry).DashEnabled = enabled
}

func (f *Fighter) SpeedScalar() float64 {
	return components.Movement.Get(f.entry).SpeedScalar
}

func (f *Fighter) SetSpeedScalar(scalar float64) {
	components.Movement.Get(f.entry).SpeedScalar = scalar
}

// SetDashRemaining only shortens a dash that is already running.
func (f *Fighter) SetDashRemaining(seconds float64) {
	m := components.Movement.Get(f.entry)
	if m.DashRemaining > 0 {
		m.DashRemaining = seconds
	}
}

func (f *Fighter) JustPressed(cmd combat.Command) bool {
	if cmd < 0 || cmd >= combat.CommandCount {
		return false
	}
	return components.Input.Get(f.entry).Commands[cmd].JustPressed
}

// Dummy wraps a training dummy entry as a combat target.
type Dummy struct {
	entry *donburi.Entry
}

func NewDummy(e *donburi.Entry) *Dummy {
	return &Dummy{entry: e}
}

func (d *Dummy) ID() uint64 {
	return uint64(d.entry.Entity())
}

func (d *Dummy) HitRegion() gamemath.Rect {
	obj := components.Object.Get(d.entry)
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (d *Dummy) Origin() math.Vec2 {
	return bodyCenter(d.entry)
}

func (d *Dummy) CanTakeDamage() bool {
	if !d.entry.Valid() {
		return false
	}
	dummy := components.Dummy.Get(d.entry)
	return !dummy.Defeated && dummy.InvulnFrames <= 0
}

// TakeDamage queues the damage for the damage system and starts the
// dummy's invulnerability window.
func (d *Dummy) TakeDamage(amount float64) {
	dummy := components.Dummy.Get(d.entry)
	dummy.InvulnFrames = dummy.InvulnOnHit
	dummy.HitsTaken++
	components.AddDamage(d.entry, amount)
}

func (d *Dummy) CanKnockback() bool {
	if !d.entry.Valid() {
		return false
	}
	dummy := components.Dummy.Get(d.entry)
	return dummy.CanKnockback && !dummy.Defeated
}

func (d *Dummy) ReceiveKnockback(duration float64, velocity math.Vec2) {
	components.Knockback.SetValue(d.entry, components.KnockbackData{
		Remaining: duration,
		Velocity:  velocity,
	})
}

// Dummies is the registry of every dummy in a world.
type Dummies struct {
	world donburi.World
}

func NewDummies(w donburi.World) *Dummies {
	return &Dummies{world: w}
}

// Targets snapshots the dummies alive when it is called.
func (r *Dummies) Targets() iter.Seq[combat.Target] {
	var targets []combat.Target
	tags.Dummy.Each(r.world, func(e *donburi.Entry) {
		targets = append(targets, NewDummy(e))
	})
	return func(yield func(combat.Target) bool) {
		for _, t := range targets {
			if !yield(t) {
				return
			}
		}
	}
}

func bodyCenter(e *donburi.Entry) math.Vec2 {
	obj := components.Object.Get(e)
	return math.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}
