package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitStopEasesBackToFullSpeed(t *testing.T) {
	h := NewHitStop(frame)
	assert.Equal(t, 1.0, h.Scale(frame), "idle clock runs at full speed")

	h.Trigger(3)
	assert.True(t, h.Active())

	first := h.Scale(frame)
	assert.Less(t, first, 0.5)
	assert.GreaterOrEqual(t, first, 0.0)

	for i := 0; i < 4; i++ {
		h.Scale(frame)
	}
	assert.False(t, h.Active())
	assert.Equal(t, 1.0, h.Scale(frame))
}

func TestHitStopIgnoresEmptyTriggers(t *testing.T) {
	h := NewHitStop(frame)
	h.Trigger(0)
	h.Trigger(-2)
	assert.False(t, h.Active())
}

func TestHitStopKeepsLongerPause(t *testing.T) {
	h := NewHitStop(frame)
	h.Trigger(10)
	h.Scale(frame)
	h.Trigger(2)

	for i := 0; i < 4; i++ {
		h.Scale(frame)
	}
	assert.True(t, h.Active(), "short trigger must not cut the running pause")
}

func TestHitStopHoldsOnZeroDelta(t *testing.T) {
	h := NewHitStop(frame)
	h.Trigger(2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 1.0, h.Scale(0))
	}
	assert.True(t, h.Active())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "recovery", PhaseRecovery.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}

func TestEventEmitter(t *testing.T) {
	var got []uint64
	e := &EventEmitter{}
	e.Subscribe(func(evt HitEvent) { got = append(got, evt.TargetID) })
	e.Subscribe(nil)
	e.Emit(HitEvent{TargetID: 4})

	var nilEmitter *EventEmitter
	nilEmitter.Emit(HitEvent{TargetID: 5})

	assert.Equal(t, []uint64{4}, got)
}
