package components

import (
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Direction Vector // X is -1 or +1
	SpawnX    float64
	SpawnY    float64
}

var Fighter = donburi.NewComponentType[FighterData]()
