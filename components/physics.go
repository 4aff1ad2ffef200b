package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is velocity in pixels per second.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Friction float64 // speed lost per second when no input drives the body
	MaxSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
