package combat

import (
	"github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// HitEvent is emitted for every target a hitbox lands on.
type HitEvent struct {
	Attack    config.AttackKind
	Hitbox    int // index into the attack's hitbox schedule
	TargetID  uint64
	Damage    float64
	Damaged   bool // false when the target refused damage
	Knockback math.Vec2
	Region    gamemath.Rect // world-space hitbox
}

// HitHandler handles hit events.
type HitHandler func(evt HitEvent)

// EventEmitter fans hit events out to its handlers.
type EventEmitter struct {
	Handlers []HitHandler
}

// Subscribe registers h.
func (e *EventEmitter) Subscribe(h HitHandler) {
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a hit event to all handlers.
func (e *EventEmitter) Emit(evt HitEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
