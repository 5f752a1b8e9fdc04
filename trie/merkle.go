// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package trie

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	gethtrie "github.com/ethereum/go-ethereum/trie"
	"github.com/ethereum/go-ethereum/trie/trienode"
	"github.com/ethereum/go-ethereum/triedb"

	"github.com/gitter-badger/foundry/foundry"
)

// Database is the node database shared by all tries of one chain instance.
type Database struct {
	trieDB *triedb.Database
}

// NewDatabase creates the trie database over the given key-value backend.
func NewDatabase(backend ethdb.KeyValueStore) *Database {
	return &Database{
		trieDB: triedb.NewDatabase(rawdb.NewDatabase(backend), triedb.HashDefaults),
	}
}

// NewMemDatabase creates an in-memory trie database, suitable for tests and
// for the solo chain.
func NewMemDatabase() *Database {
	return NewDatabase(memorydb.New())
}

// NewTrie opens the trie at the given root. The zero root denotes the empty
// trie.
func (db *Database) NewTrie(root foundry.Bytes32) (*Merkle, error) {
	rootHash := gethtypes.EmptyRootHash
	if !root.IsZero() {
		rootHash = common.Hash(root)
	}
	tr, err := gethtrie.New(gethtrie.TrieID(rootHash), db.trieDB)
	if err != nil {
		return nil, err
	}
	return &Merkle{
		db:   db,
		trie: tr,
		root: rootHash,
	}, nil
}

// Merkle is a hash-verified key/value store over a node database. It
// implements Trie and TrieMut. Not safe for concurrent use.
type Merkle struct {
	db   *Database
	trie *gethtrie.Trie
	root common.Hash
}

// Get retrieves the value for the given key. Absent keys yield (nil, nil).
func (m *Merkle) Get(key []byte) ([]byte, error) {
	return m.trie.Get(key)
}

// Update inserts or replaces the value for the given key.
func (m *Merkle) Update(key, value []byte) error {
	return m.trie.Update(key, value)
}

// Delete removes the key from the trie.
func (m *Merkle) Delete(key []byte) error {
	return m.trie.Delete(key)
}

// Hash returns the root hash reflecting all uncommitted mutations.
func (m *Merkle) Hash() foundry.Bytes32 {
	return foundry.Bytes32(m.trie.Hash())
}

// Root returns the last committed root hash.
func (m *Merkle) Root() foundry.Bytes32 {
	return foundry.Bytes32(m.root)
}

// Copy clones the trie. The copy shares the node database but mutates
// independently.
func (m *Merkle) Copy() *Merkle {
	return &Merkle{
		db:   m.db,
		trie: m.trie.Copy(),
		root: m.root,
	}
}

// Reset discards all uncommitted mutations, reopening the trie at its last
// committed root.
func (m *Merkle) Reset() error {
	reopened, err := gethtrie.New(gethtrie.TrieID(m.root), m.db.trieDB)
	if err != nil {
		return err
	}
	m.trie = reopened
	return nil
}

// Commit writes all mutated nodes into the node database and returns the new
// root hash. The trie stays usable afterwards, reopened at the new root.
func (m *Merkle) Commit(blockNumber uint64) (foundry.Bytes32, error) {
	newRoot, nodes := m.trie.Commit(false)
	if nodes != nil {
		merged := trienode.NewMergedNodeSet()
		if err := merged.Merge(nodes); err != nil {
			return foundry.Bytes32{}, err
		}
		if err := m.db.trieDB.Update(newRoot, m.root, blockNumber, merged, nil); err != nil {
			return foundry.Bytes32{}, err
		}
		if err := m.db.trieDB.Commit(newRoot, false); err != nil {
			return foundry.Bytes32{}, err
		}
	}
	reopened, err := gethtrie.New(gethtrie.TrieID(newRoot), m.db.trieDB)
	if err != nil {
		return foundry.Bytes32{}, err
	}
	m.trie = reopened
	m.root = newRoot
	return foundry.Bytes32(newRoot), nil
}

var (
	_ Trie    = (*Merkle)(nil)
	_ TrieMut = (*Merkle)(nil)
)
