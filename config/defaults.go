package config

import "github.com/automoto/torch/shared/gamemath"

// DefaultFrameData returns the shipped tuning. Each call returns a fresh copy.
func DefaultFrameData() *FrameData {
	return &FrameData{
		FrameRate:               60,
		ChainLimit:              2,
		SpeedPenalty:            1.5,
		LightChainMoveInStartup: true,
		SpecialAutoRecovery:     true,
		Reapplication:           ReapplyContinuous,
		Attacks: map[AttackKind]AttackProfile{
			AttackLightChain: {
				Damage:            10,
				Startup:           6,
				Active:            10,
				Recovery:          8,
				KnockbackDuration: 0.15,
				KnockbackSpeed:    3,
				Hitboxes: []HitboxEntry{
					{Rect: gamemath.Rect{X: 6, Y: -16, W: 18, H: 14}},
					{Rect: gamemath.Rect{X: 10, Y: -6, W: 22, H: 14}, Offset: 4},
					{Rect: gamemath.Rect{X: 4, Y: 6, W: 20, H: 12}, Offset: 7},
				},
			},
			AttackThrust: {
				Damage:            15,
				Startup:           12,
				Active:            7,
				Recovery:          10,
				KnockbackDuration: 0.25,
				KnockbackSpeed:    5,
				Hitboxes: []HitboxEntry{
					{Rect: gamemath.Rect{X: 8, Y: -4, W: 16, H: 8}},
					{Rect: gamemath.Rect{X: 8, Y: -4, W: 28, H: 8}, Offset: 3},
					{Rect: gamemath.Rect{X: 8, Y: -4, W: 40, H: 8}, Offset: 5},
				},
			},
			AttackSpecial: {
				Startup:  12,
				Active:   7,
				Recovery: 10,
				Hitboxes: []HitboxEntry{
					{Rect: gamemath.Rect{X: -20, Y: -24, W: 40, H: 48}},
				},
			},
		},
	}
}
