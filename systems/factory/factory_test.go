package factory

import (
	"os"
	"testing"

	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/leveldata"
	"github.com/automoto/torch/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

func count(w donburi.World, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateArenaFromShippedMap(t *testing.T) {
	data, err := leveldata.LoadArena(os.DirFS("../../assets"), "levels/arena.tmx")
	require.NoError(t, err)

	w := donburi.NewWorld()
	_, err = CreateArena(w, data, cfg.DefaultFrameData())
	require.NoError(t, err)

	assert.Equal(t, 1, count(w, tags.Fighter.Each))
	assert.Equal(t, 3, count(w, tags.Dummy.Each))
	assert.Equal(t, len(data.SolidRects), count(w, tags.Wall.Each))

	byName := map[string]*donburi.Entry{}
	tags.Dummy.Each(w, func(e *donburi.Entry) {
		byName[components.Dummy.Get(e).Name] = e
	})
	require.Contains(t, byName, "anchored")
	assert.False(t, components.Dummy.Get(byName["anchored"]).CanKnockback)
	assert.Equal(t, 200.0, components.Health.Get(byName["anchored"]).Max)

	require.Contains(t, byName, "glass")
	assert.Equal(t, 10, components.Dummy.Get(byName["glass"]).InvulnOnHit)
	assert.Equal(t, 30.0, components.Health.Get(byName["glass"]).Current)

	space, ok := components.Space.First(w)
	require.True(t, ok)
	// Walls, dummies and the fighter share the body space
	assert.Len(t, components.Space.Get(space).Objects(), len(data.SolidRects)+4)
}

func TestCreateArenaRequiresSpawn(t *testing.T) {
	w := donburi.NewWorld()
	_, err := CreateArena(w, &leveldata.ArenaData{Name: "empty"}, cfg.DefaultFrameData())
	assert.Error(t, err)
}

func TestCreateFighterRejectsInvalidFrames(t *testing.T) {
	w := donburi.NewWorld()
	bad := cfg.DefaultFrameData()
	bad.FrameRate = 0

	_, err := CreateFighter(w, 0, 0, bad)
	require.ErrorIs(t, err, cfg.ErrInvalidFrameData)
	assert.Zero(t, count(w, tags.Fighter.Each), "a failed fighter is not left behind")
}

// duel places a dummy inside the first LightChain hitbox of a fighter
// facing right.
func duel(t *testing.T, invulnOnHit int) (*donburi.Entry, *donburi.Entry, *combat.Controller) {
	t.Helper()
	w := donburi.NewWorld()
	CreateSpace(w, 640, 360, 16, 16)

	fighter, err := CreateFighter(w, 100, 100, cfg.DefaultFrameData())
	require.NoError(t, err)
	dummy := CreateDummy(w, leveldata.DummySpawn{X: 115, Y: 100, Name: "target", Health: 100})
	components.Dummy.Get(dummy).InvulnOnHit = invulnOnHit

	return fighter, dummy, components.Melee.Get(fighter).Controller
}

func press(fighter *donburi.Entry, cmd combat.Command, down bool) {
	components.Input.Get(fighter).Commands[cmd].JustPressed = down
}

func TestLightChainLandsOnDummy(t *testing.T) {
	fighter, dummy, ctrl := duel(t, 0)
	var hits []combat.HitEvent
	ctrl.Events().Subscribe(func(evt combat.HitEvent) { hits = append(hits, evt) })

	press(fighter, combat.CommandLightChain, true)
	ctrl.Advance(frame)
	press(fighter, combat.CommandLightChain, false)
	assert.Equal(t, combat.PhaseStartup, ctrl.Phase())
	assert.False(t, components.Movement.Get(fighter).DashEnabled)

	for i := 0; i < 12; i++ {
		ctrl.Advance(frame)
	}

	require.True(t, dummy.HasComponent(components.DamageEvent))
	evt := components.DamageEvent.Get(dummy)
	assert.GreaterOrEqual(t, evt.Hits, 1)
	assert.Equal(t, 10*float64(evt.Hits), evt.Amount)

	kb := components.Knockback.Get(dummy)
	assert.Greater(t, kb.Remaining, 0.0)
	assert.InDelta(t, 3.0, kb.Velocity.X, 1e-9)
	assert.InDelta(t, 0.0, kb.Velocity.Y, 1e-9)

	require.Len(t, hits, evt.Hits)
	assert.Equal(t, uint64(dummy.Entity()), hits[0].TargetID)
	assert.True(t, hits[0].Damaged)
}

func TestFighterCancelUsesConfiguredDashCut(t *testing.T) {
	fighter, _, ctrl := duel(t, 0)
	components.Movement.Get(fighter).DashRemaining = 0.3

	press(fighter, combat.CommandCancel, true)
	ctrl.Advance(frame)

	assert.Equal(t, combat.PhaseIdle, ctrl.Phase())
	assert.Equal(t, cfg.Combat.DashTruncateEpsilon, components.Movement.Get(fighter).DashRemaining)
}

func TestInvulnerableDummyTakesOneHit(t *testing.T) {
	fighter, dummy, ctrl := duel(t, 1000)

	press(fighter, combat.CommandLightChain, true)
	ctrl.Advance(frame)
	press(fighter, combat.CommandLightChain, false)
	for i := 0; i < 30; i++ {
		ctrl.Advance(frame)
	}

	require.True(t, dummy.HasComponent(components.DamageEvent))
	assert.Equal(t, 1, components.DamageEvent.Get(dummy).Hits)
	assert.Equal(t, combat.PhaseIdle, ctrl.Phase())
	assert.True(t, components.Movement.Get(fighter).Enabled)
}
