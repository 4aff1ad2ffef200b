package systems

import (
	"github.com/automoto/torch/combat"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// CommandBindings maps combat commands to keys and face buttons.
var CommandBindings = [combat.CommandCount]InputBinding{
	combat.CommandLightChain: {
		Keys: []ebiten.Key{ebiten.KeyJ},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	combat.CommandThrust: {
		Keys: []ebiten.Key{ebiten.KeyK},
		// Y / Triangle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	combat.CommandSpecial: {
		Keys: []ebiten.Key{ebiten.KeyF},
		// R1
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	combat.CommandCancel: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
}

var (
	MoveLeftBinding = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		// D-pad Left (analog stick handled separately)
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	}
	MoveRightBinding = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		// D-pad Right (analog stick handled separately)
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	}
	DashBinding = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyL},
		// L1
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	}
)

// AnalogDeadzone is the left stick threshold for movement (0.0 to 1.0).
const AnalogDeadzone = 0.25
