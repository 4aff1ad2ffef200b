package systems

import (
	"github.com/automoto/torch/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into every fighter's Input component.
// Must run BEFORE UpdateFighter and UpdateCombat in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		for cmd, binding := range CommandBindings {
			input.Commands[cmd] = pollBinding(binding, gamepadIDs)
		}
		input.Dash = pollBinding(DashBinding, gamepadIDs)

		input.MoveX = 0
		if pollBinding(MoveLeftBinding, gamepadIDs).Pressed {
			input.MoveX--
		}
		if pollBinding(MoveRightBinding, gamepadIDs).Pressed {
			input.MoveX++
		}
		if input.MoveX == 0 {
			input.MoveX = analogHorizontal(gamepadIDs)
		}
	})
}

// pollBinding merges a binding's keys and gamepad buttons into one state.
func pollBinding(binding InputBinding, gamepads []ebiten.GamepadID) components.ActionState {
	var s components.ActionState
	for _, key := range binding.Keys {
		s.Pressed = s.Pressed || ebiten.IsKeyPressed(key)
		s.JustPressed = s.JustPressed || inpututil.IsKeyJustPressed(key)
		s.JustReleased = s.JustReleased || inpututil.IsKeyJustReleased(key)
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			s.Pressed = s.Pressed || ebiten.IsStandardGamepadButtonPressed(gpID, btn)
			s.JustPressed = s.JustPressed || inpututil.IsStandardGamepadButtonJustPressed(gpID, btn)
			s.JustReleased = s.JustReleased || inpututil.IsStandardGamepadButtonJustReleased(gpID, btn)
		}
	}
	return s
}

// analogHorizontal reads the left stick of the first gamepad past the deadzone
func analogHorizontal(gamepads []ebiten.GamepadID) float64 {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -AnalogDeadzone || horizontal > AnalogDeadzone {
			return horizontal
		}
	}
	return 0
}
