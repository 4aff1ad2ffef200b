package actors

import (
	"testing"

	"github.com/automoto/torch/archetypes"
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func spawnFighter(w donburi.World, x, y float64) *donburi.Entry {
	e := archetypes.Fighter.Spawn(w)
	components.Object.SetValue(e, components.ObjectData{Object: resolv.NewObject(x, y, 16, 40)})
	components.Fighter.SetValue(e, components.FighterData{Direction: components.Vector{X: 1}})
	components.Movement.SetValue(e, components.MovementData{Enabled: true, DashEnabled: true, SpeedScalar: 1})
	return e
}

func spawnDummy(w donburi.World, x, y float64, invulnOnHit int) *donburi.Entry {
	e := archetypes.Dummy.Spawn(w)
	components.Object.SetValue(e, components.ObjectData{Object: resolv.NewObject(x, y, 20, 40)})
	components.Dummy.SetValue(e, components.DummyData{Name: "d", CanKnockback: true, InvulnOnHit: invulnOnHit})
	components.Health.SetValue(e, components.HealthData{Current: 50, Max: 50})
	return e
}

func TestFighterAttacker(t *testing.T) {
	w := donburi.NewWorld()
	f := NewFighter(spawnFighter(w, 100, 100))

	assert.True(t, f.FacingRight())
	assert.Equal(t, math.Vec2{X: 108, Y: 120}, f.Origin())

	components.Fighter.Get(f.entry).Direction.X = -1
	assert.False(t, f.FacingRight())
}

func TestFighterMovement(t *testing.T) {
	w := donburi.NewWorld()
	f := NewFighter(spawnFighter(w, 0, 0))

	f.SetMovementEnabled(false)
	f.SetDashEnabled(false)
	f.SetSpeedScalar(0.5)
	assert.False(t, f.MovementEnabled())
	assert.False(t, f.DashEnabled())
	assert.Equal(t, 0.5, f.SpeedScalar())

	f.SetDashRemaining(1e-8)
	assert.Zero(t, components.Movement.Get(f.entry).DashRemaining, "no dash running")

	components.Movement.Get(f.entry).DashRemaining = 0.1
	f.SetDashRemaining(1e-8)
	assert.Equal(t, 1e-8, components.Movement.Get(f.entry).DashRemaining)
}

func TestFighterInput(t *testing.T) {
	w := donburi.NewWorld()
	f := NewFighter(spawnFighter(w, 0, 0))
	components.Input.Get(f.entry).Commands[combat.CommandThrust].JustPressed = true

	assert.True(t, f.JustPressed(combat.CommandThrust))
	assert.False(t, f.JustPressed(combat.CommandLightChain))
	assert.False(t, f.JustPressed(combat.CommandCount))
	assert.False(t, f.JustPressed(-1))
}

func TestFighterCollaborators(t *testing.T) {
	w := donburi.NewWorld()
	f := NewFighter(spawnFighter(w, 0, 0))
	spawnDummy(w, 50, 0, 0)

	deps := f.Collaborators()
	require.NotNil(t, deps.Targets)
	assert.Same(t, f, deps.Attacker)

	n := 0
	for range deps.Targets.Targets() {
		n++
	}
	assert.Equal(t, 1, n, "the fighter is not its own target")
}

func TestDummyTarget(t *testing.T) {
	w := donburi.NewWorld()
	e := spawnDummy(w, 10, 20, 5)
	d := NewDummy(e)

	assert.Equal(t, uint64(e.Entity()), d.ID())
	assert.Equal(t, gamemath.Rect{X: 10, Y: 20, W: 20, H: 40}, d.HitRegion())
	assert.Equal(t, math.Vec2{X: 20, Y: 40}, d.Origin())
	assert.True(t, d.CanTakeDamage())

	d.TakeDamage(7)
	assert.False(t, d.CanTakeDamage(), "hit starts invulnerability")
	require.True(t, e.HasComponent(components.DamageEvent))
	assert.Equal(t, 7.0, components.DamageEvent.Get(e).Amount)
	assert.Equal(t, 1, components.Dummy.Get(e).HitsTaken)

	// Several hits in one tick accumulate
	d.TakeDamage(3)
	assert.Equal(t, 10.0, components.DamageEvent.Get(e).Amount)
	assert.Equal(t, 2, components.DamageEvent.Get(e).Hits)
}

func TestDummyKnockback(t *testing.T) {
	w := donburi.NewWorld()
	e := spawnDummy(w, 0, 0, 0)
	d := NewDummy(e)

	require.True(t, d.CanKnockback())
	d.ReceiveKnockback(0.25, math.Vec2{X: -5})
	assert.Equal(t, components.KnockbackData{Remaining: 0.25, Velocity: math.Vec2{X: -5}}, *components.Knockback.Get(e))

	components.Dummy.Get(e).CanKnockback = false
	assert.False(t, d.CanKnockback())
}

func TestDefeatedDummyIsIneligible(t *testing.T) {
	w := donburi.NewWorld()
	e := spawnDummy(w, 0, 0, 0)
	d := NewDummy(e)
	components.Dummy.Get(e).Defeated = true

	assert.False(t, d.CanTakeDamage())
	assert.False(t, d.CanKnockback())
}

func TestRemovedDummyIsIneligible(t *testing.T) {
	w := donburi.NewWorld()
	e := spawnDummy(w, 0, 0, 0)
	d := NewDummy(e)
	w.Remove(e.Entity())

	assert.False(t, d.CanTakeDamage())
	assert.False(t, d.CanKnockback())
}

func TestDummiesStopEarly(t *testing.T) {
	w := donburi.NewWorld()
	for i := 0; i < 3; i++ {
		spawnDummy(w, float64(i*30), 0, 0)
	}

	var seen int
	for range NewDummies(w).Targets() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
