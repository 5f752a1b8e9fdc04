// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package scheme

import (
	"embed"
	"os"

	"github.com/pkg/errors"
)

// ChainType selects the chain scheme to run with: one of the preset chains,
// or the path of a custom scheme file. Parsing never fails; any string that
// is not a preset name is taken as a custom path.
type ChainType string

// Preset chains.
const (
	Mainnet    ChainType = "mainnet"
	Solo       ChainType = "solo"
	Tendermint ChainType = "tendermint"
	Corgi      ChainType = "corgi"
	Beagle     ChainType = "beagle"
)

// DefaultChainType is the chain used when none is configured.
const DefaultChainType = Tendermint

//go:embed presets/*.json
var presets embed.FS

var presetFiles = map[ChainType]string{
	Mainnet:    "presets/mainnet.json",
	Solo:       "presets/solo.json",
	Tendermint: "presets/tendermint.json",
	Corgi:      "presets/corgi.json",
	Beagle:     "presets/beagle.json",
}

// ParseChainType converts a string into a ChainType.
func ParseChainType(s string) ChainType {
	return ChainType(s)
}

// String implements the stringer interface.
func (t ChainType) String() string {
	return string(t)
}

// IsPreset reports whether the chain type names a built-in scheme.
func (t ChainType) IsPreset() bool {
	_, ok := presetFiles[t]
	return ok
}

// UnmarshalText implements encoding.TextUnmarshaler so chain types can be
// read from config files.
func (t *ChainType) UnmarshalText(text []byte) error {
	*t = ChainType(text)
	return nil
}

// Scheme resolves the chain type into its scheme: presets load their
// embedded definition, anything else is opened as a scheme file path.
func (t ChainType) Scheme() (*Scheme, error) {
	if name, ok := presetFiles[t]; ok {
		data, err := presets.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "load preset scheme %q", t)
		}
		return Parse(data)
	}
	data, err := os.ReadFile(string(t))
	if err != nil {
		return nil, errors.Wrapf(err, "load scheme file at %q", t)
	}
	return Parse(data)
}
