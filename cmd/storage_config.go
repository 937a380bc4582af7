package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kitchen-sim/kitchen-sim/kitchen"
)

// storageConfigFile is the yaml shape of --storage-config. Every field is
// optional; absent fields keep the defaults already present in cfg.
type storageConfigFile struct {
	HotCapacity           *int     `yaml:"hot_capacity"`
	ColdCapacity          *int     `yaml:"cold_capacity"`
	FrozenCapacity        *int     `yaml:"frozen_capacity"`
	OverflowCapacity      *int     `yaml:"overflow_capacity"`
	OverflowDecayModifier *float64 `yaml:"overflow_decay_modifier"`
}

// LoadStorageConfig overlays the yaml file at path onto cfg. Validation
// happens afterwards on the assembled Config, not here.
func LoadStorageConfig(path string, cfg *kitchen.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read storage config: %w", err)
	}

	var file storageConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse storage config: %w", err)
	}

	if file.HotCapacity != nil {
		cfg.HotCapacity = *file.HotCapacity
	}
	if file.ColdCapacity != nil {
		cfg.ColdCapacity = *file.ColdCapacity
	}
	if file.FrozenCapacity != nil {
		cfg.FrozenCapacity = *file.FrozenCapacity
	}
	if file.OverflowCapacity != nil {
		cfg.OverflowCapacity = *file.OverflowCapacity
	}
	if file.OverflowDecayModifier != nil {
		cfg.OverflowDecayModifier = *file.OverflowDecayModifier
	}
	return nil
}
