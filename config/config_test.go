// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitter-badger/foundry/config"
	"github.com/gitter-badger/foundry/scheme"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, scheme.DefaultChainType, cfg.Chain)
	assert.Equal(t, "foundry-data", cfg.DataDir)
	assert.Equal(t, 3, cfg.Verbosity)
	assert.False(t, cfg.Metrics)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
chain = "solo"
data_dir = "/var/lib/foundry"
verbosity = 4
metrics = true
`)
	cfg, err := config.Load(path)
	assert.Nil(t, err)
	assert.Equal(t, scheme.Solo, cfg.Chain)
	assert.Equal(t, "/var/lib/foundry", cfg.DataDir)
	assert.Equal(t, 4, cfg.Verbosity)
	assert.True(t, cfg.Metrics)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, `chain = "corgi"`)
	cfg, err := config.Load(path)
	assert.Nil(t, err)
	assert.Equal(t, scheme.Corgi, cfg.Chain)
	assert.Equal(t, "foundry-data", cfg.DataDir)
	assert.Equal(t, 3, cfg.Verbosity)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `chian = "solo"`)
	_, err := config.Load(path)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NotNil(t, err)
}
