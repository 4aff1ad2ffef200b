package components

import (
	"github.com/automoto/torch/config"
	"github.com/yohamta/donburi"
)

// TuningData tracks where frame data comes from and the outcome of the last
// reload.
type TuningData struct {
	Frames    *config.FrameData
	Path      string
	Watcher   *config.TuningWatcher
	LastError error
	Reloads   int
}

var Tuning = donburi.NewComponentType[TuningData]()
