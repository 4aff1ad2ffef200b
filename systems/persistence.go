package systems

import (
	"bytes"
	"encoding/json"
	"log"

	cfg "github.com/automoto/torch/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume    float64 `json:"sfxVolume"`
	DrawHitboxes bool    `json:"drawHitboxes"`
}

const (
	settingsKey = "settings"
	tuningKey   = "tuning"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "torch",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the arena's systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(e, saved.SFXVolume)
	cfg.Debug.DrawHitboxes = cfg.Debug.DrawHitboxes || saved.DrawHitboxes
}

// LoadTuningSnapshot returns the last frame data that loaded cleanly, or
// nil when nothing usable is stored.
func LoadTuningSnapshot() *cfg.FrameData {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning snapshot: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	frames, err := cfg.ParseFrameData(bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: Ignoring saved tuning snapshot: %v", err)
		return nil
	}
	return frames
}

// SaveTuningSnapshot stores frames so the next start picks them up.
func SaveTuningSnapshot(frames *cfg.FrameData) error {
	if !gdataInitialized || gdataManager == nil || frames == nil {
		return nil
	}

	data, err := cfg.MarshalFrameData(frames)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning snapshot: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		log.Printf("Warning: Could not save tuning snapshot: %v", err)
		return err
	}
	return nil
}
