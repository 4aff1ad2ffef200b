package factory

import (
	"errors"
	"log"

	"github.com/automoto/torch/archetypes"
	"github.com/automoto/torch/combat"
	"github.com/automoto/torch/components"
	cfg "github.com/automoto/torch/config"
	"github.com/automoto/torch/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateArena populates w from arena data: the body space, walls, dummies
// and the fighter at the first spawn point.
func CreateArena(w donburi.World, data *leveldata.ArenaData, frames *cfg.FrameData, opts ...combat.Option) (*donburi.Entry, error) {
	if data == nil || len(data.SpawnPoints) == 0 {
		return nil, errors.New("create arena: no spawn point")
	}

	arena := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(arena, components.ArenaData{Arena: data})

	width, height := data.MapWidth, data.MapHeight
	if width <= 0 || height <= 0 {
		width, height = cfg.C.Width, cfg.C.Height
	}
	CreateSpace(w, width, height, 16, 16)

	for _, r := range data.SolidRects {
		CreateWall(w, r.X, r.Y, r.W, r.H)
	}
	for _, d := range data.Dummies {
		CreateDummy(w, d)
	}

	spawn := data.SpawnPoints[0]
	if len(data.SpawnPoints) > 1 {
		log.Printf("Warning: arena %s has %d spawn points, using index %d", data.Name, len(data.SpawnPoints), spawn.Index)
	}
	if _, err := CreateFighter(w, spawn.X, spawn.Y, frames, opts...); err != nil {
		return nil, err
	}
	return arena, nil
}

// CreateHitStop spawns the world's hit-stop clock.
func CreateHitStop(w donburi.World, frameDuration float64) *donburi.Entry {
	e := archetypes.HitStop.Spawn(w)
	components.HitStop.SetValue(e, components.HitStopData{
		Clock:     combat.NewHitStop(frameDuration),
		TimeScale: 1,
	})
	return e
}

// CreateTuning spawns the tuning state for frames loaded from path.
func CreateTuning(w donburi.World, frames *cfg.FrameData, path string, watcher *cfg.TuningWatcher) *donburi.Entry {
	e := archetypes.Tuning.Spawn(w)
	components.Tuning.SetValue(e, components.TuningData{
		Frames:  frames,
		Path:    path,
		Watcher: watcher,
	})
	return e
}
