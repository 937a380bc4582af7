package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitchen-sim/kitchen-sim/kitchen"
)

func writeTempYaml(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStorageConfig_OverlaysOnlyPresentFields(t *testing.T) {
	path := writeTempYaml(t, "hot_capacity: 2\noverflow_decay_modifier: 3.0\n")
	cfg := kitchen.DefaultConfig()

	require.NoError(t, LoadStorageConfig(path, &cfg))

	assert.Equal(t, 2, cfg.HotCapacity)
	assert.Equal(t, 3.0, cfg.OverflowDecayModifier)
	// untouched fields keep their defaults
	assert.Equal(t, 6, cfg.ColdCapacity)
	assert.Equal(t, 12, cfg.OverflowCapacity)
}

func TestLoadStorageConfig_FullFile(t *testing.T) {
	path := writeTempYaml(t, `
hot_capacity: 1
cold_capacity: 2
frozen_capacity: 3
overflow_capacity: 4
overflow_decay_modifier: 1.5
`)
	cfg := kitchen.DefaultConfig()

	require.NoError(t, LoadStorageConfig(path, &cfg))

	assert.Equal(t, 1, cfg.HotCapacity)
	assert.Equal(t, 2, cfg.ColdCapacity)
	assert.Equal(t, 3, cfg.FrozenCapacity)
	assert.Equal(t, 4, cfg.OverflowCapacity)
	assert.Equal(t, 1.5, cfg.OverflowDecayModifier)
}

func TestLoadStorageConfig_MissingFile(t *testing.T) {
	cfg := kitchen.DefaultConfig()
	assert.Error(t, LoadStorageConfig("does-not-exist.yaml", &cfg))
}

func TestLoadStorageConfig_MalformedYaml(t *testing.T) {
	path := writeTempYaml(t, "hot_capacity: [not a number\n")
	cfg := kitchen.DefaultConfig()
	assert.Error(t, LoadStorageConfig(path, &cfg))
}
