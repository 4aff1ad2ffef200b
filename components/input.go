package components

import (
	"github.com/automoto/torch/combat"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is one fighter's input for the current tick.
type InputData struct {
	Commands [combat.CommandCount]ActionState
	MoveX    float64 // -1..1
	Dash     ActionState
}

var Input = donburi.NewComponentType[InputData]()
