package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFrameData is wrapped by every frame data validation failure.
var ErrInvalidFrameData = errors.New("invalid frame data")

// ValidationError describes one rejected frame data field.
type ValidationError struct {
	Attack AttackKind // AttackNone for top-level fields
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Attack == AttackNone {
		return fmt.Sprintf("frame data: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("frame data: %s.%s: %s", e.Attack, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidFrameData }

// Validate checks every field and returns all problems joined together, or nil.
func (fd *FrameData) Validate() error {
	if fd == nil {
		return &ValidationError{Field: "frame_data", Reason: "missing"}
	}

	var errs []error
	fail := func(kind AttackKind, field, format string, args ...any) {
		errs = append(errs, &ValidationError{Attack: kind, Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if !finite(fd.FrameRate) || fd.FrameRate <= 0 {
		fail(AttackNone, "frame_rate", "must be positive, got %v", fd.FrameRate)
	}
	if fd.ChainLimit < 1 {
		fail(AttackNone, "chain_limit", "must be at least 1, got %d", fd.ChainLimit)
	}
	if !finite(fd.SpeedPenalty) || fd.SpeedPenalty <= 0 {
		fail(AttackNone, "speed_penalty", "must be positive, got %v", fd.SpeedPenalty)
	}
	switch fd.Reapplication {
	case ReapplyContinuous, ReapplyLatch:
	default:
		fail(AttackNone, "reapplication", "unknown mode %q", fd.Reapplication)
	}

	for kind := range fd.Attacks {
		if kind == AttackNone {
			fail(AttackNone, "attacks.none", "the none attack cannot carry a profile")
		} else if _, ok := attackKindNames[kind]; !ok {
			fail(AttackNone, "attacks", "unrecognized attack kind %d", int(kind))
		}
	}

	for _, kind := range AttackKinds {
		p, ok := fd.Attacks[kind]
		if !ok {
			fail(kind, "profile", "missing")
			continue
		}
		validateProfile(kind, p, fail)
	}

	return errors.Join(errs...)
}

func validateProfile(kind AttackKind, p AttackProfile, fail func(AttackKind, string, string, ...any)) {
	durations := []struct {
		field string
		value float64
	}{
		{"damage", p.Damage},
		{"startup", p.Startup},
		{"active", p.Active},
		{"recovery", p.Recovery},
		{"knockback_duration", p.KnockbackDuration},
		{"knockback_speed", p.KnockbackSpeed},
	}
	for _, d := range durations {
		if !finite(d.value) {
			fail(kind, d.field, "must be finite, got %v", d.value)
		} else if d.value < 0 {
			fail(kind, d.field, "must not be negative, got %v", d.value)
		}
	}

	if len(p.Hitboxes) == 0 {
		fail(kind, "hitboxes", "schedule is empty")
		return
	}
	if p.Hitboxes[0].Offset != 0 {
		fail(kind, "hitboxes[0].offset", "first hitbox must be active on entry, got %v", p.Hitboxes[0].Offset)
	}

	prev := 0.0
	for i, hb := range p.Hitboxes {
		field := fmt.Sprintf("hitboxes[%d]", i)
		if !finite(hb.Offset) {
			fail(kind, field+".offset", "must be finite, got %v", hb.Offset)
			continue
		}
		if !finite(hb.Rect.X) || !finite(hb.Rect.Y) || !finite(hb.Rect.W) || !finite(hb.Rect.H) {
			fail(kind, field+".rect", "must be finite, got %v,%v %vx%v", hb.Rect.X, hb.Rect.Y, hb.Rect.W, hb.Rect.H)
		} else if hb.Rect.W < 0 || hb.Rect.H < 0 {
			fail(kind, field+".rect", "negative extent %vx%v", hb.Rect.W, hb.Rect.H)
		}
		if hb.Offset < prev {
			fail(kind, field+".offset", "offsets must not decrease (%v after %v)", hb.Offset, prev)
		}
		if hb.Offset > p.Active {
			fail(kind, field+".offset", "offset %v is past the %v frame active window", hb.Offset, p.Active)
		}
		if kind == AttackSpecial && hb.Offset != 0 {
			fail(kind, field+".offset", "special hitboxes are not staggered")
		}
		prev = hb.Offset
	}
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
