// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package kv defines the key/value store abstraction used for non-trie
// persistence (state snapshots), and its leveldb implementation.
package kv

// Getter wraps methods for getting kvs.
type Getter interface {
	// Get value for given key.
	// An error is returned if key not found. It can be checked via IsNotFound.
	Get(key []byte) (value []byte, err error)
	Has(key []byte) (bool, error)
	IsNotFound(error) bool
}

// Putter wraps methods for putting kvs.
type Putter interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// Store is a full key/value store.
type Store interface {
	Getter
	Putter

	NewBatch() Batch
	Close() error
}

// Batch defines a batch of putting ops, applied atomically by Write.
type Batch interface {
	Putter

	Len() int
	Write() error
}
