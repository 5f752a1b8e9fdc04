// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package scheme loads chain schemes: the genesis state and engine
// parameters a chain instance is born with.
package scheme

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/gitter-badger/foundry/foundry"
	"github.com/gitter-badger/foundry/state"
	"github.com/gitter-badger/foundry/trie"
)

// Scheme describes a chain: name, engine, chain params and genesis state.
type Scheme struct {
	Name    string  `json:"name"`
	Engine  Engine  `json:"engine"`
	Params  Params  `json:"params"`
	Genesis Genesis `json:"genesis"`
}

// Params are chain-wide parameters.
type Params struct {
	NetworkID        string          `json:"networkId"`
	MaxExtraDataSize *hexutil.Uint64 `json:"maxExtraDataSize,omitempty"`
}

// Genesis describes the state the chain starts from.
type Genesis struct {
	Accounts map[string]GenesisAccount `json:"accounts"`
	Shards   map[string]GenesisShard   `json:"shards"`
}

// GenesisAccount is one pre-funded account.
type GenesisAccount struct {
	Balance hexutil.Uint64 `json:"balance"`
	Seq     hexutil.Uint64 `json:"seq"`
}

// GenesisShard is one shard created at genesis.
type GenesisShard struct {
	Owners []string `json:"owners"`
	Users  []string `json:"users"`
}

// Parse decodes and validates a scheme document.
func Parse(data []byte) (*Scheme, error) {
	var s Scheme
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse scheme")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scheme) validate() error {
	if s.Name == "" {
		return errors.New("scheme: name must not be empty")
	}
	if err := s.Engine.validate(); err != nil {
		return err
	}
	if s.Params.NetworkID == "" {
		return errors.New("scheme: networkId must not be empty")
	}
	for addr := range s.Genesis.Accounts {
		if _, err := foundry.ParseAddress(addr); err != nil {
			return errors.Wrapf(err, "scheme: invalid genesis account address %q", addr)
		}
	}
	for id, shard := range s.Genesis.Shards {
		if len(shard.Owners) == 0 {
			return errors.Errorf("scheme: genesis shard %s must have owners", id)
		}
	}
	return nil
}

// SeedState builds the genesis state through a fresh top cache and commits
// it into the given trie. The caller derives the genesis state root by
// hashing or committing the trie afterwards.
func (s *Scheme) SeedState(t trie.TrieMut) (*state.TopCache, error) {
	c := state.NewTopCache(nil, nil, nil, nil, nil)

	// deterministic seeding order
	addrs := make([]string, 0, len(s.Genesis.Accounts))
	for addr := range s.Genesis.Accounts {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	for _, raw := range addrs {
		genesis := s.Genesis.Accounts[raw]
		addr, err := foundry.ParseAddress(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "scheme: invalid genesis account address %q", raw)
		}
		acc, err := c.AccountMut(*addr, t)
		if err != nil {
			return nil, err
		}
		acc.Balance = uint64(genesis.Balance)
		acc.Seq = uint64(genesis.Seq)
	}

	meta, err := c.MetadataMut(foundry.NewMetadataAddress(), t)
	if err != nil {
		return nil, err
	}
	ids, err := s.shardIDs()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		meta.AddShard()
		genesis := s.Genesis.Shards[strconv.Itoa(int(id))]
		shard, err := c.ShardMut(foundry.NewShardAddress(id), t)
		if err != nil {
			return nil, err
		}
		for _, raw := range genesis.Owners {
			owner, err := foundry.ParseAddress(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "scheme: invalid shard owner address %q", raw)
			}
			shard.Owners = append(shard.Owners, *owner)
		}
		for _, raw := range genesis.Users {
			user, err := foundry.ParseAddress(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "scheme: invalid shard user address %q", raw)
			}
			shard.Users = append(shard.Users, *user)
		}
	}

	if err := c.Commit(t); err != nil {
		return nil, err
	}
	return c, nil
}

// shardIDs parses and orders the genesis shard ids. Ids must be contiguous
// from zero: metadata tracks shards by count, not by sparse id.
func (s *Scheme) shardIDs() ([]uint16, error) {
	ids := make([]uint16, 0, len(s.Genesis.Shards))
	for key := range s.Genesis.Shards {
		id, err := strconv.ParseUint(key, 10, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "scheme: invalid genesis shard id %q", key)
		}
		ids = append(ids, uint16(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		if int(id) != i {
			return nil, errors.Errorf("scheme: genesis shard ids must be contiguous from 0, got %d", id)
		}
	}
	return ids, nil
}
