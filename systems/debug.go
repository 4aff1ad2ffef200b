package systems

import (
	"image/color"

	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/gamemath"
	"github.com/automoto/torch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitboxToggleKey shows or hides the hitbox overlay.
const HitboxToggleKey = ebiten.KeyH

// UpdateDebugKeys handles the overlay toggle and remembers the choice.
func UpdateDebugKeys(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(HitboxToggleKey) {
		return
	}
	cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	_ = SaveSettings(&SavedSettings{
		SFXVolume:    GetOrCreateAudio(ecs).SFXVolume,
		DrawHitboxes: cfg.Debug.DrawHitboxes,
	})
}

// DrawHitboxes outlines hurt regions and fills the hitboxes evaluated on
// the last tick.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	tags.Dummy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		outlineRect(screen, gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}, cfg.UI.HurtboxColor)
	})

	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Melee.Get(e).Controller
		if ctrl == nil {
			return
		}
		for _, r := range ctrl.ActiveHitboxes() {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.UI.HitboxColor, false)
		}
	})
}

func outlineRect(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), 1, c, false)       // Top
	vector.FillRect(screen, float32(r.X), float32(r.Y+r.H-1), float32(r.W), 1, c, false) // Bottom
	vector.FillRect(screen, float32(r.X), float32(r.Y), 1, float32(r.H), c, false)       // Left
	vector.FillRect(screen, float32(r.X+r.W-1), float32(r.Y), 1, float32(r.H), c, false) // Right
}
