package config

import (
	"fmt"

	"github.com/automoto/torch/shared/gamemath"
)

// AttackKind identifies one of the fighter's attacks.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackLightChain
	AttackThrust
	AttackSpecial
)

// AttackKinds lists every attack that carries a profile, in input priority order.
var AttackKinds = []AttackKind{AttackLightChain, AttackThrust, AttackSpecial}

var attackKindNames = map[AttackKind]string{
	AttackNone:       "none",
	AttackLightChain: "light_chain",
	AttackThrust:     "thrust",
	AttackSpecial:    "special",
}

func (k AttackKind) String() string {
	if name, ok := attackKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AttackKind(%d)", int(k))
}

// ParseAttackKind resolves a configuration key to an attack that can carry a
// profile. "none" is rejected.
func ParseAttackKind(name string) (AttackKind, error) {
	for _, k := range AttackKinds {
		if attackKindNames[k] == name {
			return k, nil
		}
	}
	return AttackNone, &ValidationError{Field: "attacks." + name, Reason: "unrecognized attack kind"}
}

// ReapplicationMode decides whether an active hitbox keeps hitting the same
// target every tick or only once per attack.
type ReapplicationMode string

const (
	// ReapplyContinuous re-resolves every active hitbox every tick.
	ReapplyContinuous ReapplicationMode = "continuous"
	// ReapplyLatch lets each hitbox land on a given target once per attack.
	ReapplyLatch ReapplicationMode = "latch"
)

// HitboxEntry is one step of an attack's hitbox schedule.
type HitboxEntry struct {
	Rect   gamemath.Rect `yaml:"rect"`
	Offset float64       `yaml:"offset"` // frames after the active phase begins
}

// AttackProfile is the frame data of a single attack. Durations are in
// frames at FrameData.FrameRate.
type AttackProfile struct {
	Damage            float64
	Startup           float64
	Active            float64
	Recovery          float64
	KnockbackDuration float64 // seconds
	KnockbackSpeed    float64
	Hitboxes          []HitboxEntry
}

// StartupEnd is the attack time, in seconds, at which Startup gives way to Active.
func (p AttackProfile) StartupEnd(frame float64) float64 {
	return p.Startup * frame
}

// ActiveEnd is the attack time at which Active gives way to Recovery.
func (p AttackProfile) ActiveEnd(frame float64) float64 {
	return (p.Startup + p.Active) * frame
}

// RecoveryEnd is the attack time at which the attack returns to idle.
func (p AttackProfile) RecoveryEnd(frame float64) float64 {
	return (p.Startup + p.Active + p.Recovery) * frame
}

// HitboxStart is the attack time after which hitbox i is live.
func (p AttackProfile) HitboxStart(i int, frame float64) float64 {
	return (p.Startup + p.Hitboxes[i].Offset) * frame
}

func (p AttackProfile) clone() AttackProfile {
	p.Hitboxes = append([]HitboxEntry(nil), p.Hitboxes...)
	return p
}

// FrameData is the complete, validated combat tuning. Treat it as immutable
// once loaded; use Clone before editing a copy.
type FrameData struct {
	FrameRate               float64
	ChainLimit              int
	SpeedPenalty            float64
	LightChainMoveInStartup bool
	SpecialAutoRecovery     bool
	Reapplication           ReapplicationMode
	Attacks                 map[AttackKind]AttackProfile
}

// FrameDuration is the length of one frame in seconds.
func (fd *FrameData) FrameDuration() float64 {
	return 1 / fd.FrameRate
}

// Profile returns the profile for kind.
func (fd *FrameData) Profile(kind AttackKind) (AttackProfile, bool) {
	p, ok := fd.Attacks[kind]
	return p, ok
}

// Clone returns a deep copy.
func (fd *FrameData) Clone() *FrameData {
	out := *fd
	out.Attacks = make(map[AttackKind]AttackProfile, len(fd.Attacks))
	for k, p := range fd.Attacks {
		out.Attacks[k] = p.clone()
	}
	return &out
}
