package components

import (
	"github.com/yohamta/donburi"
)

// DummyData is a training dummy placed in the arena.
type DummyData struct {
	Name         string
	CanKnockback bool
	InvulnFrames int // frames left during which hits are ignored
	InvulnOnHit  int // frames of invulnerability granted per damaging hit
	Defeated     bool
	RespawnTimer int // frames until a defeated dummy is refilled
	HitsTaken    int
	HomeX, HomeY float64 // position restored on respawn
}

var Dummy = donburi.NewComponentType[DummyData]()
