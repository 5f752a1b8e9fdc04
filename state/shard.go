// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/gitter-badger/foundry/foundry"

// Shard is the top-level record of one shard: the root of the shard's own
// state trie plus its access lists. RLP encoded objects are stored in the
// state trie, keyed by foundry.ShardAddress.
type Shard struct {
	Root   foundry.Bytes32
	Owners []foundry.Address
	Users  []foundry.Address
}

// Copy returns a deep copy of the record.
func (s Shard) Copy() Shard {
	cpy := s
	if s.Owners != nil {
		cpy.Owners = append([]foundry.Address(nil), s.Owners...)
	}
	if s.Users != nil {
		cpy.Users = append([]foundry.Address(nil), s.Users...)
	}
	return cpy
}

// IsOwner reports whether addr is one of the shard owners.
func (s *Shard) IsOwner(addr foundry.Address) bool {
	for _, owner := range s.Owners {
		if owner == addr {
			return true
		}
	}
	return false
}
