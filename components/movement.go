package components

import "github.com/yohamta/donburi"

// MovementData is the part of a fighter's movement the combat controller
// locks and scales.
type MovementData struct {
	Enabled       bool
	DashEnabled   bool
	SpeedScalar   float64
	DashRemaining float64 // seconds, 0 when not dashing
	DashDirection float64
}

var Movement = donburi.NewComponentType[MovementData]()
