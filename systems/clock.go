package systems

import (
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/yohamta/donburi/ecs"
)

// FrameDelta is one fixed simulation tick in seconds.
func FrameDelta() float64 {
	return 1 / float64(cfg.C.TPS)
}

// tickDelta is the simulation delta for this tick after hit-stop scaling.
func tickDelta(ecs *ecs.ECS) float64 {
	dt := FrameDelta()
	if e, ok := components.HitStop.First(ecs.World); ok {
		dt *= components.HitStop.Get(e).TimeScale
	}
	return dt
}
