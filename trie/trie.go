// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package trie defines the boundary to the persistent merkle key/value store
// backing all entity data, and a hash-verified implementation of it built on
// go-ethereum's trie.
package trie

// Trie is the read surface of the state trie.
type Trie interface {
	// Get queries the value for the given key.
	// An absent key yields (nil, nil); an error means the trie itself
	// failed (missing node, corrupted data).
	Get(key []byte) ([]byte, error)
}

// TrieMut is the mutable surface of the state trie.
type TrieMut interface {
	Trie

	// Update inserts or replaces the value for the given key.
	Update(key, value []byte) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key []byte) error
}
