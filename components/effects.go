package components

import "github.com/yohamta/donburi"

// FlashData tracks a short white flash after a hit
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
