package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// frameDataDoc is the on-disk shape of FrameData. Pointer fields distinguish
// "omitted" from "zero" so omitted values keep their defaults.
type frameDataDoc struct {
	FrameRate               *float64               `yaml:"frame_rate,omitempty"`
	ChainLimit              *int                   `yaml:"chain_limit,omitempty"`
	SpeedPenalty            *float64               `yaml:"speed_penalty,omitempty"`
	LightChainMoveInStartup *bool                  `yaml:"light_chain_move_in_startup,omitempty"`
	SpecialAutoRecovery     *bool                  `yaml:"special_auto_recovery,omitempty"`
	Reapplication           *ReapplicationMode     `yaml:"reapplication,omitempty"`
	Attacks                 map[string]*profileDoc `yaml:"attacks,omitempty"`
}

type profileDoc struct {
	Damage            *float64      `yaml:"damage,omitempty"`
	Startup           *float64      `yaml:"startup,omitempty"`
	Active            *float64      `yaml:"active,omitempty"`
	Recovery          *float64      `yaml:"recovery,omitempty"`
	KnockbackDuration *float64      `yaml:"knockback_duration,omitempty"`
	KnockbackSpeed    *float64      `yaml:"knockback_speed,omitempty"`
	Hitboxes          []HitboxEntry `yaml:"hitboxes"`
}

// LoadFrameData reads a YAML tuning file, layers it over the defaults and
// validates the result.
func LoadFrameData(path string) (*FrameData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame data %s: %w", path, err)
	}
	defer f.Close()

	fd, err := ParseFrameData(f)
	if err != nil {
		return nil, fmt.Errorf("load frame data %s: %w", path, err)
	}
	return fd, nil
}

// ParseFrameData decodes YAML frame data. Unknown fields are rejected.
// An empty document yields the defaults.
func ParseFrameData(r io.Reader) (*FrameData, error) {
	var doc frameDataDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode frame data: %w", err)
	}

	fd := DefaultFrameData()
	if err := doc.applyTo(fd); err != nil {
		return nil, err
	}
	if err := fd.Validate(); err != nil {
		return nil, err
	}
	return fd, nil
}

// MarshalFrameData encodes fd as a complete YAML document that ParseFrameData
// reads back unchanged.
func MarshalFrameData(fd *FrameData) ([]byte, error) {
	doc := frameDataDoc{
		FrameRate:               &fd.FrameRate,
		ChainLimit:              &fd.ChainLimit,
		SpeedPenalty:            &fd.SpeedPenalty,
		LightChainMoveInStartup: &fd.LightChainMoveInStartup,
		SpecialAutoRecovery:     &fd.SpecialAutoRecovery,
		Reapplication:           &fd.Reapplication,
		Attacks:                 make(map[string]*profileDoc, len(fd.Attacks)),
	}
	for kind, p := range fd.Attacks {
		doc.Attacks[kind.String()] = &profileDoc{
			Damage:            &p.Damage,
			Startup:           &p.Startup,
			Active:            &p.Active,
			Recovery:          &p.Recovery,
			KnockbackDuration: &p.KnockbackDuration,
			KnockbackSpeed:    &p.KnockbackSpeed,
			Hitboxes:          p.Hitboxes,
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode frame data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode frame data: %w", err)
	}
	return buf.Bytes(), nil
}

func (doc *frameDataDoc) applyTo(fd *FrameData) error {
	setFloat(&fd.FrameRate, doc.FrameRate)
	setFloat(&fd.SpeedPenalty, doc.SpeedPenalty)
	if doc.ChainLimit != nil {
		fd.ChainLimit = *doc.ChainLimit
	}
	if doc.LightChainMoveInStartup != nil {
		fd.LightChainMoveInStartup = *doc.LightChainMoveInStartup
	}
	if doc.SpecialAutoRecovery != nil {
		fd.SpecialAutoRecovery = *doc.SpecialAutoRecovery
	}
	if doc.Reapplication != nil {
		fd.Reapplication = *doc.Reapplication
	}

	for name, pd := range doc.Attacks {
		kind, err := ParseAttackKind(name)
		if err != nil {
			return err
		}
		if pd == nil {
			continue
		}
		p := fd.Attacks[kind]
		setFloat(&p.Damage, pd.Damage)
		setFloat(&p.Startup, pd.Startup)
		setFloat(&p.Active, pd.Active)
		setFloat(&p.Recovery, pd.Recovery)
		setFloat(&p.KnockbackDuration, pd.KnockbackDuration)
		setFloat(&p.KnockbackSpeed, pd.KnockbackSpeed)
		if pd.Hitboxes != nil {
			p.Hitboxes = append([]HitboxEntry(nil), pd.Hitboxes...)
		}
		fd.Attacks[kind] = p
	}
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
