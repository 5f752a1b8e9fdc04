// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitter-badger/foundry/kv"
)

func TestStoreBasic(t *testing.T) {
	store, err := kv.OpenMem()
	assert.Nil(t, err)
	defer store.Close()

	_, err = store.Get([]byte("missing"))
	assert.NotNil(t, err)
	assert.True(t, store.IsNotFound(err))

	has, err := store.Has([]byte("missing"))
	assert.Nil(t, err)
	assert.False(t, has)

	assert.Nil(t, store.Put([]byte("key"), []byte("value")))
	v, err := store.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), v)
	has, _ = store.Has([]byte("key"))
	assert.True(t, has)

	assert.Nil(t, store.Delete([]byte("key")))
	has, _ = store.Has([]byte("key"))
	assert.False(t, has)
}

func TestBatch(t *testing.T) {
	store, err := kv.OpenMem()
	assert.Nil(t, err)
	defer store.Close()

	assert.Nil(t, store.Put([]byte("gone"), []byte("1")))

	batch := store.NewBatch()
	assert.Nil(t, batch.Put([]byte("a"), []byte("1")))
	assert.Nil(t, batch.Put([]byte("b"), []byte("2")))
	assert.Nil(t, batch.Delete([]byte("gone")))
	assert.Equal(t, 3, batch.Len())

	// nothing applied until Write
	has, _ := store.Has([]byte("a"))
	assert.False(t, has)

	assert.Nil(t, batch.Write())
	v, err := store.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
	has, _ = store.Has([]byte("gone"))
	assert.False(t, has)
}

func TestBucket(t *testing.T) {
	store, err := kv.OpenMem()
	assert.Nil(t, err)
	defer store.Close()

	b1 := kv.Bucket("b1.").NewStore(store)
	b2 := kv.Bucket("b2.").NewStore(store)

	assert.Nil(t, b1.Put([]byte("key"), []byte("one")))
	assert.Nil(t, b2.Put([]byte("key"), []byte("two")))

	v, err := b1.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("one"), v)
	v, err = b2.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("two"), v)

	// the raw store sees prefixed keys only
	has, _ := store.Has([]byte("key"))
	assert.False(t, has)
	v, err = store.Get([]byte("b1.key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("one"), v)

	// not-found classification passes through the bucket
	_, err = b1.Get([]byte("nope"))
	assert.True(t, b1.IsNotFound(err))

	// batches prefix too
	batch := b1.NewBatch()
	assert.Nil(t, batch.Put([]byte("k2"), []byte("v2")))
	assert.Nil(t, batch.Write())
	v, err = store.Get([]byte("b1.k2"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v2"), v)
}
