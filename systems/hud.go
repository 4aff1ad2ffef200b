package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 16

var hudLines []string

// DrawHUD prints the fighter's combat state, the tuning status and the
// dummies' health in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hudLines = hudLines[:0]

	if e, ok := components.Arena.First(ecs.World); ok {
		if arena := components.Arena.Get(e).Arena; arena != nil {
			hudLines = append(hudLines, arena.Name)
		}
	}

	if fighter, ok := tags.Fighter.First(ecs.World); ok {
		if ctrl := components.Melee.Get(fighter).Controller; ctrl != nil {
			hudLines = append(hudLines,
				fmt.Sprintf("%s %s  chain %d  canAttack %t", ctrl.Attack(), ctrl.Phase(), ctrl.ChainCount(), ctrl.CanAttack()))
			if ctrl.ReloadPending() {
				hudLines = append(hudLines, "reload pending")
			}
		}
	}

	if e, ok := components.Tuning.First(ecs.World); ok {
		tuning := components.Tuning.Get(e)
		switch {
		case tuning.LastError != nil:
			hudLines = append(hudLines, "tuning error: "+tuning.LastError.Error())
		case tuning.Path != "":
			hudLines = append(hudLines, fmt.Sprintf("tuning %s (reloads %d)", tuning.Path, tuning.Reloads))
		}
	}

	var dummies []string
	tags.Dummy.Each(ecs.World, func(e *donburi.Entry) {
		dummy := components.Dummy.Get(e)
		hp := components.Health.Get(e)
		dummies = append(dummies, fmt.Sprintf("%s %.0f/%.0f", dummy.Name, hp.Current, hp.Max))
	})
	if len(dummies) > 0 {
		hudLines = append(hudLines, strings.Join(dummies, "  "))
	}
	hudLines = append(hudLines, "J chain  K thrust  F special  Space cancel  H hitboxes")

	pad := cfg.UI.HUDTextPadding
	for i, line := range hudLines {
		ebitenutil.DebugPrintAt(screen, line, pad, pad+i*hudLineHeight)
	}
}
