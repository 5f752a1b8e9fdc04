// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package config loads the node configuration file.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/gitter-badger/foundry/scheme"
)

// Config is the node configuration, read from a TOML file. Flags override
// fields individually.
type Config struct {
	// Chain is a preset chain name or the path of a custom scheme file.
	Chain scheme.ChainType `toml:"chain"`
	// DataDir is the directory holding the chain databases.
	DataDir string `toml:"data_dir"`
	// Verbosity is the log level, 0 (crit) through 4 (debug).
	Verbosity int `toml:"verbosity"`
	// Metrics enables prometheus metrics collection.
	Metrics bool `toml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Chain:     scheme.DefaultChainType,
		DataDir:   "foundry-data",
		Verbosity: 3,
	}
}

// Load reads the configuration file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config at %q", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}
