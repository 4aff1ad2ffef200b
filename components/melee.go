package components

import (
	"github.com/automoto/torch/combat"
	"github.com/yohamta/donburi"
)

// MeleeData owns a fighter's combat controller.
type MeleeData struct {
	Controller *combat.Controller
}

var Melee = donburi.NewComponentType[MeleeData]()
