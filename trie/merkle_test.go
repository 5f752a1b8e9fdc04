// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitter-badger/foundry/foundry"
	"github.com/gitter-badger/foundry/trie"
)

func TestMerkleBasic(t *testing.T) {
	db := trie.NewMemDatabase()
	tr, err := db.NewTrie(foundry.Bytes32{})
	assert.Nil(t, err)

	v, err := tr.Get([]byte("missing"))
	assert.Nil(t, err)
	assert.Nil(t, v)

	assert.Nil(t, tr.Update([]byte("key1"), []byte("value1")))
	assert.Nil(t, tr.Update([]byte("key2"), []byte("value2")))

	v, err = tr.Get([]byte("key1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value1"), v)

	assert.Nil(t, tr.Delete([]byte("key2")))
	v, err = tr.Get([]byte("key2"))
	assert.Nil(t, err)
	assert.Nil(t, v)
}

func TestMerkleHashDeterministic(t *testing.T) {
	build := func() foundry.Bytes32 {
		db := trie.NewMemDatabase()
		tr, err := db.NewTrie(foundry.Bytes32{})
		assert.Nil(t, err)
		assert.Nil(t, tr.Update([]byte("a"), []byte("1")))
		assert.Nil(t, tr.Update([]byte("b"), []byte("2")))
		return tr.Hash()
	}
	assert.Equal(t, build(), build())
}

func TestMerkleCommitReopen(t *testing.T) {
	db := trie.NewMemDatabase()
	tr, err := db.NewTrie(foundry.Bytes32{})
	assert.Nil(t, err)

	assert.Nil(t, tr.Update([]byte("key"), []byte("value")))
	root, err := tr.Commit(1)
	assert.Nil(t, err)
	assert.False(t, root.IsZero())
	assert.Equal(t, root, tr.Root())

	// committed trie stays usable
	v, err := tr.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), v)

	// reopening at the committed root sees the data
	reopened, err := db.NewTrie(root)
	assert.Nil(t, err)
	v, err = reopened.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), v)
}

func TestMerkleEmptyCommit(t *testing.T) {
	db := trie.NewMemDatabase()
	tr, err := db.NewTrie(foundry.Bytes32{})
	assert.Nil(t, err)

	root, err := tr.Commit(0)
	assert.Nil(t, err)

	// the empty root reopens fine too
	_, err = db.NewTrie(root)
	assert.Nil(t, err)
}

func TestMerkleReset(t *testing.T) {
	db := trie.NewMemDatabase()
	tr, err := db.NewTrie(foundry.Bytes32{})
	assert.Nil(t, err)

	assert.Nil(t, tr.Update([]byte("key"), []byte("kept")))
	root, err := tr.Commit(1)
	assert.Nil(t, err)

	assert.Nil(t, tr.Update([]byte("key"), []byte("discarded")))
	assert.Nil(t, tr.Reset())

	assert.Equal(t, root, tr.Hash())
	v, err := tr.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("kept"), v)
}

func TestMerkleCopyIndependent(t *testing.T) {
	db := trie.NewMemDatabase()
	tr, err := db.NewTrie(foundry.Bytes32{})
	assert.Nil(t, err)
	assert.Nil(t, tr.Update([]byte("key"), []byte("old")))

	cpy := tr.Copy()
	assert.Nil(t, cpy.Update([]byte("key"), []byte("new")))

	v, err := tr.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("old"), v)
	v, err = cpy.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("new"), v)
	assert.NotEqual(t, tr.Hash(), cpy.Hash())
}
