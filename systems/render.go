package systems

import (
	"image/color"

	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	healthBarBack  = color.RGBA{R: 160, G: 30, B: 30, A: 255}
	healthBarFront = color.RGBA{R: 40, G: 220, B: 40, A: 255}
)

// NewBackgroundRenderer draws the pre-rendered arena tiles, or a flat fill
// when there are none.
func NewBackgroundRenderer(background *ebiten.Image) func(*ecs.ECS, *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Arena.BackgroundColor)
		if background != nil {
			screen.DrawImage(background, op)
		}
	}
}

// DrawBodies draws the fighter and dummies as filled boxes.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Dummy.Each(ecs.World, func(e *donburi.Entry) {
		dummy := components.Dummy.Get(e)
		c := cfg.UI.DummyColor
		if components.Flash.Get(e).Duration > 0 {
			c = cfg.UI.DummyHitColor
		}
		if dummy.Defeated {
			c.A /= 3
		}
		fillObject(screen, components.Object.Get(e), c)
	})

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		fillObject(screen, o, cfg.UI.FighterColor)

		// Facing marker
		dir := components.Fighter.Get(e).Direction.X
		markX := o.X + o.W/2 + dir*o.W/2
		vector.FillRect(screen, float32(markX-2), float32(o.Y+6), 4, 4, cfg.UI.HitboxColor, false)
	})
}

func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) {
			return
		}
		o := components.Object.Get(e)
		hp := components.Health.Get(e)

		// Health bar dimensions and position
		barWidth := 32.0
		barHeight := 4.0
		// Position the bar above the entity's collision box
		barX := o.X + (o.W-barWidth)/2
		barY := o.Y - barHeight - 4 // 4 pixels of padding

		healthPercentage := 0.0
		if hp.Max > 0 {
			healthPercentage = hp.Current / hp.Max
		}

		vector.FillRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), healthBarBack, false)
		vector.FillRect(screen, float32(barX), float32(barY), float32(barWidth*healthPercentage), float32(barHeight), healthBarFront, false)
	})
}

// TriggerHitFlash starts a white flash on the entity
func TriggerHitFlash(entry *donburi.Entry) {
	if entry.HasComponent(components.Flash) {
		components.Flash.Get(entry).Duration = cfg.Combat.HitFlashFrames
	}
}

func fillObject(screen *ebiten.Image, o *components.ObjectData, c color.RGBA) {
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
}
