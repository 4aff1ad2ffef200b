package scenes

import (
	"log"
	"sync"

	"github.com/automoto/torch/assets"
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/systems"
	"github.com/automoto/torch/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer the arena uses.
const LayerDefault ecs.LayerID = 0

// ArenaScene is the training arena: one fighter and a row of dummies.
type ArenaScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Close stops the tuning watcher, if any.
func (as *ArenaScene) Close() error {
	if as.ecs == nil {
		return nil
	}
	e, ok := components.Tuning.First(as.ecs.World)
	if !ok {
		return nil
	}
	if w := components.Tuning.Get(e).Watcher; w != nil {
		return w.Close()
	}
	return nil
}

func (as *ArenaScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	arena := assets.MustLoadArena(cfg.Arena.MapPath)
	frames := loadFrameData()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Hit-stop first: every later system reads its time scale
	ecs.AddSystem(systems.UpdateHitStop)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebugKeys)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateFighter)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateDamage)
	ecs.AddSystem(systems.UpdateDummies)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(LayerDefault, systems.NewBackgroundRenderer(arena.Background))
	ecs.AddRenderer(LayerDefault, systems.DrawBodies)
	ecs.AddRenderer(LayerDefault, systems.DrawHealthBars)
	ecs.AddRenderer(LayerDefault, systems.DrawHitboxes)
	ecs.AddRenderer(LayerDefault, systems.DrawHUD)

	as.ecs = ecs

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ecs, saved)
	}

	factory.CreateHitStop(ecs.World, systems.FrameDelta())
	if _, err := factory.CreateArena(ecs.World, arena.Data, frames,
		combat.WithSpecialHandler(systems.OnSpecial(ecs)),
	); err != nil {
		panic(err)
	}
	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		components.Melee.Get(e).Controller.Events().Subscribe(systems.OnHit(ecs))
	})

	var watcher *cfg.TuningWatcher
	if cfg.Debug.WatchTuning && cfg.Debug.TuningPath != "" {
		w, err := cfg.WatchTuning(cfg.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Debug.TuningPath, err)
		} else {
			watcher = w
		}
	}
	factory.CreateTuning(ecs.World, frames, cfg.Debug.TuningPath, watcher)
}

// loadFrameData prefers the tuning file, then the saved snapshot, then the
// shipped defaults.
func loadFrameData() *cfg.FrameData {
	if path := cfg.Debug.TuningPath; path != "" {
		frames, err := cfg.LoadFrameData(path)
		if err == nil {
			_ = systems.SaveTuningSnapshot(frames)
			return frames
		}
		log.Printf("Warning: Falling back from %s: %v", path, err)
	}
	if frames := systems.LoadTuningSnapshot(); frames != nil {
		return frames
	}
	return cfg.DefaultFrameData()
}
