package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Dummy   = donburi.NewTag().SetName("Dummy")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for body collision in the arena space
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
	ResolvDummy   = "Dummy"
)
