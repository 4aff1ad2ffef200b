package config

import "image/color"

// Config holds general window and loop configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// MovementConfig contains the host character movement values the combat
// controller toggles and scales.
type MovementConfig struct {
	WalkSpeed    float64 // pixels per second at speed scalar 1
	DashSpeed    float64 // pixels per second
	DashDuration float64 // seconds
	Friction     float64 // speed lost per second once input stops

	// Knockback. Frame data speeds are pixels per frame at TPS.
	KnockbackFriction float64 // speed lost per second once knockback ends
	MaxKnockbackSpeed float64
}

// FighterConfig contains the player fighter's body values
type FighterConfig struct {
	CollisionWidth  float64
	CollisionHeight float64
}

// DummyConfig contains defaults for training dummies spawned in the arena.
// Tiled object properties override these per dummy.
type DummyConfig struct {
	Health          int
	InvulnFrames    int
	CanKnockback    bool
	CollisionWidth  float64
	CollisionHeight float64
	RespawnFrames   int // frames after defeat before the dummy is refilled
}

// CombatConfig contains combat values that are not part of the frame data
type CombatConfig struct {
	// Broad phase space for hitbox resolution
	SpaceWidth    int
	SpaceHeight   int
	SpaceCellSize int

	// Hit-stop applied when a hitbox lands (frames, 0 = off)
	HitStopFrames float64

	// Remaining dash time written on cancel so the dash ends next tick
	DashTruncateEpsilon float64

	HitFlashFrames    int // white flash on a dummy after a damaging hit
	HealthBarDuration int // frames a dummy's health bar stays up after a hit
}

// ArenaConfig contains the sandbox arena values
type ArenaConfig struct {
	MapPath         string
	BackgroundColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool   // Outline hitboxes and hurt regions
	TuningPath   string // YAML frame data file, empty = saved snapshot or defaults
	WatchTuning  bool   // Reload TuningPath when it changes on disk
}

// UIConfig contains debug overlay colors
type UIConfig struct {
	HitboxColor    color.RGBA
	HurtboxColor   color.RGBA
	FighterColor   color.RGBA
	DummyColor     color.RGBA
	DummyHitColor  color.RGBA
	HUDTextPadding int
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Fighter FighterConfig
var Dummy DummyConfig
var Combat CombatConfig
var Arena ArenaConfig
var Debug DebugConfig
var UI UIConfig

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Movement = MovementConfig{
		WalkSpeed:    120,
		DashSpeed:    360,
		DashDuration: 0.18,
		Friction:     1800,

		KnockbackFriction: 900,
		MaxKnockbackSpeed: 600,
	}

	Fighter = FighterConfig{
		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Dummy = DummyConfig{
		Health:          100,
		InvulnFrames:    0,
		CanKnockback:    true,
		CollisionWidth:  20,
		CollisionHeight: 40,
		RespawnFrames:   90,
	}

	Combat = CombatConfig{
		SpaceWidth:    1280,
		SpaceHeight:   720,
		SpaceCellSize: 32,

		HitStopFrames: 3,

		DashTruncateEpsilon: 1e-8,

		HitFlashFrames:    6,
		HealthBarDuration: 120,
	}

	Arena = ArenaConfig{
		MapPath:         "levels/arena.tmx",
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 28, A: 255},
	}

	UI = UIConfig{
		HitboxColor:    color.RGBA{R: 255, G: 60, B: 60, A: 140},
		HurtboxColor:   color.RGBA{R: 60, G: 180, B: 255, A: 120},
		FighterColor:   color.RGBA{R: 230, G: 200, B: 90, A: 255},
		DummyColor:     color.RGBA{R: 140, G: 140, B: 160, A: 255},
		DummyHitColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HUDTextPadding: 4,
	}
}
