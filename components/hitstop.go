package components

import (
	"github.com/automoto/torch/combat"
	"github.com/yohamta/donburi"
)

// HitStopData is the world's hit-stop clock. TimeScale is the factor the
// current tick runs at.
type HitStopData struct {
	Clock     *combat.HitStop
	TimeScale float64
}

var HitStop = donburi.NewComponentType[HitStopData]()
