// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package scheme

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Engine is the consensus engine descriptor of a scheme. Exactly one of the
// fields must be set.
type Engine struct {
	Null       *NullEngine       `json:"null,omitempty"`
	Solo       *SoloEngine       `json:"solo,omitempty"`
	Tendermint *TendermintEngine `json:"tendermint,omitempty"`
}

func (e *Engine) validate() error {
	n := 0
	if e.Null != nil {
		n++
	}
	if e.Solo != nil {
		n++
	}
	if e.Tendermint != nil {
		n++
	}
	if n != 1 {
		return errors.New("scheme: exactly one engine must be configured")
	}
	return nil
}

// BlockReward returns the configured block reward, zero when unset.
func (e *Engine) BlockReward() uint64 {
	var reward *hexutil.Uint64
	switch {
	case e.Null != nil:
		reward = e.Null.Params.BlockReward
	case e.Solo != nil:
		reward = e.Solo.Params.BlockReward
	case e.Tendermint != nil:
		reward = e.Tendermint.Params.BlockReward
	}
	if reward == nil {
		return 0
	}
	return uint64(*reward)
}

// NullEngine is the engine that seals nothing; used by schemes that only
// carry state.
type NullEngine struct {
	Params NullEngineParams `json:"params"`
}

// NullEngineParams null engine params deserialization.
type NullEngineParams struct {
	BlockReward *hexutil.Uint64 `json:"blockReward"`
}

// SoloEngine is the single-node development engine.
type SoloEngine struct {
	Params SoloEngineParams `json:"params"`
}

// SoloEngineParams solo engine params deserialization.
type SoloEngineParams struct {
	BlockReward *hexutil.Uint64 `json:"blockReward"`
}

// TendermintEngine is the BFT production engine.
type TendermintEngine struct {
	Params TendermintEngineParams `json:"params"`
}

// TendermintEngineParams tendermint engine params deserialization.
type TendermintEngineParams struct {
	BlockReward      *hexutil.Uint64 `json:"blockReward"`
	TimeoutProposeMs uint64          `json:"timeoutProposeMs,omitempty"`
}
