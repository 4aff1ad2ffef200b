package combat

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HitStop is a short pause scheduled on the game loop's clock. While it runs,
// Scale eases the time scale from 0 back to 1; the loop multiplies its delta
// by that factor.
type HitStop struct {
	frame float64
	left  float64 // seconds until the pause ends
	tween *gween.Tween
}

// NewHitStop creates a hit-stop clock for the given frame duration in seconds.
func NewHitStop(frameDuration float64) *HitStop {
	return &HitStop{frame: frameDuration}
}

// Trigger starts or restarts the pause. A longer running pause is not cut short.
func (h *HitStop) Trigger(frames float64) {
	if frames <= 0 {
		return
	}
	duration := frames * h.frame
	if h.tween != nil && h.left >= duration {
		return
	}
	h.left = duration
	h.tween = gween.New(0, 1, float32(duration), ease.InExpo)
}

// Active reports whether a pause is running.
func (h *HitStop) Active() bool {
	return h.tween != nil
}

// Scale advances the pause by the real delta dt and returns the time scale
// to apply this tick.
func (h *HitStop) Scale(dt float64) float64 {
	if h.tween == nil || dt <= 0 {
		return 1
	}
	h.left -= dt
	v, done := h.tween.Update(float32(dt))
	if done {
		h.tween = nil
		h.left = 0
		return 1
	}
	return float64(v)
}
