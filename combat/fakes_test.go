package combat

import (
	"iter"
	"testing"

	"github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const frame = 1.0 / 60.0

type fakeAttacker struct {
	right  bool
	origin math.Vec2
}

func (a *fakeAttacker) FacingRight() bool { return a.right }
func (a *fakeAttacker) Origin() math.Vec2 { return a.origin }

type fakeMovement struct {
	move, dash    bool
	speed         float64
	dashRemaining float64
	dashWrites    int
}

func (m *fakeMovement) MovementEnabled() bool      { return m.move }
func (m *fakeMovement) SetMovementEnabled(v bool)  { m.move = v }
func (m *fakeMovement) DashEnabled() bool          { return m.dash }
func (m *fakeMovement) SetDashEnabled(v bool)      { m.dash = v }
func (m *fakeMovement) SpeedScalar() float64       { return m.speed }
func (m *fakeMovement) SetSpeedScalar(v float64)   { m.speed = v }
func (m *fakeMovement) SetDashRemaining(s float64) { m.dashRemaining = s; m.dashWrites++ }

type knock struct {
	duration float64
	velocity math.Vec2
}

type fakeTarget struct {
	id        uint64
	region    gamemath.Rect
	origin    math.Vec2
	canDamage bool
	canKnock  bool
	damage    []float64
	knocks    []knock
}

func newTarget(id uint64, region gamemath.Rect) *fakeTarget {
	return &fakeTarget{
		id:        id,
		region:    region,
		origin:    region.Center(),
		canDamage: true,
		canKnock:  true,
	}
}

func (t *fakeTarget) ID() uint64               { return t.id }
func (t *fakeTarget) HitRegion() gamemath.Rect { return t.region }
func (t *fakeTarget) Origin() math.Vec2        { return t.origin }
func (t *fakeTarget) CanTakeDamage() bool      { return t.canDamage }
func (t *fakeTarget) CanKnockback() bool       { return t.canKnock }

func (t *fakeTarget) TakeDamage(amount float64) {
	t.damage = append(t.damage, amount)
}

func (t *fakeTarget) ReceiveKnockback(duration float64, v math.Vec2) {
	t.knocks = append(t.knocks, knock{duration: duration, velocity: v})
}

type fakeRegistry struct {
	targets []*fakeTarget
}

func (r *fakeRegistry) Targets() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, t := range r.targets {
			if !yield(t) {
				return
			}
		}
	}
}

type fakeInput struct {
	pressed [CommandCount]bool
}

func (in *fakeInput) JustPressed(cmd Command) bool { return in.pressed[cmd] }

type rig struct {
	c        *Controller
	attacker *fakeAttacker
	movement *fakeMovement
	targets  *fakeRegistry
	input    *fakeInput
	hits     []HitEvent
}

func newRig(t *testing.T, frames *config.FrameData, opts ...Option) *rig {
	t.Helper()
	r := &rig{
		attacker: &fakeAttacker{right: true, origin: math.Vec2{X: 100, Y: 100}},
		movement: &fakeMovement{move: true, dash: true, speed: 1},
		targets:  &fakeRegistry{},
		input:    &fakeInput{},
	}
	events := &EventEmitter{}
	events.Subscribe(func(evt HitEvent) { r.hits = append(r.hits, evt) })
	opts = append([]Option{WithEvents(events)}, opts...)

	c, err := NewController(frames, Collaborators{
		Attacker: r.attacker,
		Movement: r.movement,
		Targets:  r.targets,
		Input:    r.input,
	}, opts...)
	require.NoError(t, err)
	r.c = c
	return r
}

func (r *rig) add(targets ...*fakeTarget) {
	r.targets.targets = append(r.targets.targets, targets...)
}

// step advances one tick with cmds pressed for that tick only.
func (r *rig) step(dt float64, cmds ...Command) {
	for _, cmd := range cmds {
		r.input.pressed[cmd] = true
	}
	r.c.Advance(dt)
	r.input.pressed = [CommandCount]bool{}
}
