package systems

import (
	"log"

	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReloadKey reloads the tuning file on demand.
const ReloadKey = ebiten.KeyF5

// UpdateTuning reloads frame data when the watcher reports a change or
// ReloadKey is pressed. Controllers mid-attack pick the new data up on
// their next return to idle.
func UpdateTuning(ecs *ecs.ECS) {
	e, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(e)

	reload := tuning.Path != "" && inpututil.IsKeyJustPressed(ReloadKey)
	if w := tuning.Watcher; w != nil {
		select {
		case _, ok := <-w.Events:
			reload = reload || ok
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("Warning: Tuning watcher: %v", err)
			}
		default:
		}
	}
	if reload {
		ReloadTuning(ecs.World, tuning)
	}
}

// ReloadTuning loads tuning.Path and hands the result to every controller.
// A file that fails to load or validate leaves the running data in place.
func ReloadTuning(w donburi.World, tuning *components.TuningData) {
	frames, err := cfg.LoadFrameData(tuning.Path)
	if err != nil {
		tuning.LastError = err
		log.Printf("Warning: Keeping current frame data: %v", err)
		return
	}

	components.Melee.Each(w, func(e *donburi.Entry) {
		ctrl := components.Melee.Get(e).Controller
		if ctrl == nil {
			return
		}
		if err := ctrl.Reload(frames); err != nil {
			log.Printf("Warning: Could not reload controller: %v", err)
		}
	})

	tuning.Frames = frames
	tuning.LastError = nil
	tuning.Reloads++
	_ = SaveTuningSnapshot(frames)
}
