package combat

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
)

// ErrMissingCollaborator is returned by NewController when a collaborator is nil.
var ErrMissingCollaborator = errors.New("combat: missing collaborator")

// cancelled is the elapsed time a cancel forces so recovery ends at once.
const cancelled = math.MaxFloat64

// DefaultDashCut is the dash time a cancel leaves behind unless WithDashCut
// overrides it.
const DefaultDashCut = 1e-8

// Resolver space used when no WithResolver option is given.
const (
	DefaultSpaceWidth  = 1280
	DefaultSpaceHeight = 720
	DefaultCellSize    = 32
)

// Controller runs one character's attacks. It is not safe for concurrent use;
// the game loop calls Advance once per tick.
type Controller struct {
	frames  *config.FrameData
	pending *config.FrameData // applied on the next return to Idle

	deps     Collaborators
	resolver *Resolver
	events   *EventEmitter
	special  SpecialHandler
	dashCut  float64

	phase      Phase
	attack     config.AttackKind
	elapsed    float64
	canAttack  bool
	facingSign int
	chainCount int

	hitThisActivation map[uint64]bool
	latched           map[latchKey]bool
	activeHitboxes    []gamemath.Rect
}

// Option configures a Controller.
type Option func(*Controller)

// WithResolver replaces the default DefaultSpaceWidth x DefaultSpaceHeight resolver.
func WithResolver(r *Resolver) Option {
	return func(c *Controller) {
		c.resolver = r
	}
}

// WithEvents sets the emitter that receives hit events.
func WithEvents(e *EventEmitter) Option {
	return func(c *Controller) {
		c.events = e
	}
}

// WithDashCut sets the dash time a cancel truncates a running dash to.
func WithDashCut(seconds float64) Option {
	return func(c *Controller) {
		c.dashCut = seconds
	}
}

// WithSpecialHandler sets the handler invoked for Special hitboxes.
func WithSpecialHandler(h SpecialHandler) Option {
	return func(c *Controller) {
		c.special = h
	}
}

// NewController creates an idle controller. frames must be valid and is
// never modified.
func NewController(frames *config.FrameData, deps Collaborators, opts ...Option) (*Controller, error) {
	if frames == nil {
		return nil, fmt.Errorf("combat: nil frame data: %w", config.ErrInvalidFrameData)
	}
	if err := frames.Validate(); err != nil {
		return nil, fmt.Errorf("combat: %w", err)
	}
	switch {
	case deps.Attacker == nil:
		return nil, fmt.Errorf("%w: attacker", ErrMissingCollaborator)
	case deps.Movement == nil:
		return nil, fmt.Errorf("%w: movement", ErrMissingCollaborator)
	case deps.Targets == nil:
		return nil, fmt.Errorf("%w: targets", ErrMissingCollaborator)
	case deps.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingCollaborator)
	}

	c := &Controller{
		frames:            frames,
		deps:              deps,
		phase:             PhaseIdle,
		attack:            config.AttackNone,
		canAttack:         true,
		dashCut:           DefaultDashCut,
		facingSign:        gamemath.FacingSign(deps.Attacker.FacingRight()),
		hitThisActivation: make(map[uint64]bool),
		latched:           make(map[latchKey]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = NewResolver(DefaultSpaceWidth, DefaultSpaceHeight, DefaultCellSize)
	}
	if c.events == nil {
		c.events = &EventEmitter{}
	}
	return c, nil
}

// Advance runs one tick. The steps run in a fixed order and each sees the
// changes made by the ones before it. A non-positive dt is a frozen tick.
func (c *Controller) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.activeHitboxes = c.activeHitboxes[:0]
	if c.phase != PhaseIdle {
		c.elapsed += dt
	}

	// 1. facing
	c.facingSign = gamemath.FacingSign(c.deps.Attacker.FacingRight())

	// 2. cancel
	if c.deps.Input.JustPressed(CommandCancel) {
		c.Cancel()
	}

	// 3. attack input, in priority order
	c.tryLightChain()
	c.tryHeavy(config.AttackThrust, CommandThrust)
	c.tryHeavy(config.AttackSpecial, CommandSpecial)

	// 4-6. phases
	if c.phase == PhaseStartup {
		c.updateStartup()
	}
	if c.phase == PhaseActive {
		c.updateActive()
	}
	if c.phase == PhaseRecovery {
		c.updateRecovery()
	}
}

// Cancel forces the current attack into the end of its recovery and cuts any
// dash short. While idle only the dash is cut.
func (c *Controller) Cancel() {
	if c.phase == PhaseIdle {
		c.deps.Movement.SetDashRemaining(c.dashCut)
		return
	}
	c.cancel()
}

func (c *Controller) cancel() {
	c.phase = PhaseRecovery
	c.elapsed = cancelled
	c.deps.Movement.SetDashRemaining(c.dashCut)
}

// inputWindow reports whether a new attack may start: from idle, or chained
// out of LightChain's recovery.
func (c *Controller) inputWindow() bool {
	return c.phase == PhaseIdle ||
		(c.attack == config.AttackLightChain && c.phase == PhaseRecovery)
}

func (c *Controller) tryLightChain() {
	if !c.canAttack || !c.inputWindow() || c.chainCount >= c.frames.ChainLimit {
		return
	}
	if !c.deps.Input.JustPressed(CommandLightChain) {
		return
	}

	m := c.deps.Movement
	if c.phase == PhaseRecovery {
		c.cancel()
		c.canAttack = true
		m.SetMovementEnabled(true)
		m.SetSpeedScalar(m.SpeedScalar() * c.frames.SpeedPenalty)
		c.chainCount++
	}

	c.begin(config.AttackLightChain)
	if c.chainCount == c.frames.ChainLimit {
		c.canAttack = false
	}
	if !c.frames.LightChainMoveInStartup {
		m.SetMovementEnabled(false)
	}
	m.SetSpeedScalar(m.SpeedScalar() / c.frames.SpeedPenalty)
	m.SetDashEnabled(false)
}

// tryHeavy starts Thrust or Special. Both lock movement for the whole attack.
func (c *Controller) tryHeavy(kind config.AttackKind, cmd Command) {
	if !c.canAttack || !c.inputWindow() {
		return
	}
	if !c.deps.Input.JustPressed(cmd) {
		return
	}

	m := c.deps.Movement
	c.chainCount = 0
	if c.phase == PhaseRecovery {
		c.cancel()
		m.SetSpeedScalar(m.SpeedScalar() * c.frames.SpeedPenalty)
		c.chainCount++
	}

	c.begin(kind)
	c.canAttack = false
	m.SetMovementEnabled(false)
	m.SetDashEnabled(false)
}

func (c *Controller) begin(kind config.AttackKind) {
	c.elapsed = 0
	c.phase = PhaseStartup
	c.attack = kind
	clear(c.latched)
}

func (c *Controller) updateStartup() {
	c.deps.Movement.SetDashEnabled(false)
	profile, ok := c.frames.Profile(c.attack)
	if !ok {
		// Unknown attack: fall through to cleanup.
		c.phase = PhaseRecovery
		return
	}
	if c.elapsed > profile.StartupEnd(c.frames.FrameDuration()) {
		c.phase = PhaseActive
	}
}

func (c *Controller) updateActive() {
	m := c.deps.Movement
	m.SetMovementEnabled(false)
	m.SetDashEnabled(false)

	profile, ok := c.frames.Profile(c.attack)
	if !ok {
		c.phase = PhaseRecovery
		return
	}
	frame := c.frames.FrameDuration()

	switch c.attack {
	case config.AttackLightChain, config.AttackThrust:
		for i, entry := range profile.Hitboxes {
			if i == 0 || c.elapsed > profile.HitboxStart(i, frame) {
				c.executeHitbox(i, entry, profile)
			}
		}
		if c.elapsed > profile.ActiveEnd(frame) {
			c.phase = PhaseRecovery
		}
	case config.AttackSpecial:
		c.executeSpecial(profile)
		if c.frames.SpecialAutoRecovery && c.elapsed > profile.ActiveEnd(frame) {
			c.phase = PhaseRecovery
		}
	}
}

func (c *Controller) updateRecovery() {
	if c.attack == config.AttackNone {
		c.toIdle()
		return
	}
	profile, ok := c.frames.Profile(c.attack)
	if !ok || c.elapsed > profile.RecoveryEnd(c.frames.FrameDuration()) {
		c.toIdle()
	}
}

func (c *Controller) toIdle() {
	m := c.deps.Movement
	if c.attack == config.AttackLightChain {
		m.SetSpeedScalar(m.SpeedScalar() * c.frames.SpeedPenalty)
	}
	c.phase = PhaseIdle
	c.attack = config.AttackNone
	c.canAttack = true
	c.elapsed = 0
	c.chainCount = 0
	m.SetMovementEnabled(true)
	m.SetDashEnabled(true)

	if c.pending != nil {
		c.frames, c.pending = c.pending, nil
	}
}

// Reload swaps in new frame data. It takes effect immediately when idle and
// otherwise once the current attack returns to idle, so an attack never
// mixes two tunings.
func (c *Controller) Reload(frames *config.FrameData) error {
	if frames == nil {
		return fmt.Errorf("combat: nil frame data: %w", config.ErrInvalidFrameData)
	}
	if err := frames.Validate(); err != nil {
		return fmt.Errorf("combat: reload: %w", err)
	}
	if c.phase == PhaseIdle {
		c.frames, c.pending = frames, nil
		return nil
	}
	c.pending = frames
	return nil
}

// ReloadPending reports whether a reload is waiting for the attack to end.
func (c *Controller) ReloadPending() bool {
	return c.pending != nil
}

func (c *Controller) CanAttack() bool           { return c.canAttack }
func (c *Controller) SetCanAttack(v bool)       { c.canAttack = v }
func (c *Controller) Phase() Phase              { return c.phase }
func (c *Controller) Attack() config.AttackKind { return c.attack }
func (c *Controller) ChainCount() int           { return c.chainCount }
func (c *Controller) FacingSign() int           { return c.facingSign }
func (c *Controller) Frames() *config.FrameData { return c.frames }
func (c *Controller) Events() *EventEmitter     { return c.events }
func (c *Controller) Resolver() *Resolver       { return c.resolver }

// Elapsed is the time since the current attack began. It reads
// math.MaxFloat64 between a cancel and the following return to idle.
func (c *Controller) Elapsed() float64 {
	return c.elapsed
}

// ActiveHitboxes returns the world-space hitboxes evaluated during the last
// Advance. The slice is reused on the next tick.
func (c *Controller) ActiveHitboxes() []gamemath.Rect {
	return c.activeHitboxes
}
