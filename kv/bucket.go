// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

// Bucket provides a logical keyspace inside a store by prefixing all keys.
type Bucket string

// NewStore wraps src so that every key is prefixed with the bucket name.
func (b Bucket) NewStore(src Store) Store {
	return &bucketStore{string(b), src}
}

type bucketStore struct {
	prefix string
	src    Store
}

func (s *bucketStore) key(key []byte) []byte {
	return append(append(make([]byte, 0, len(s.prefix)+len(key)), s.prefix...), key...)
}

func (s *bucketStore) Get(key []byte) ([]byte, error) {
	return s.src.Get(s.key(key))
}

func (s *bucketStore) Has(key []byte) (bool, error) {
	return s.src.Has(s.key(key))
}

func (s *bucketStore) IsNotFound(err error) bool {
	return s.src.IsNotFound(err)
}

func (s *bucketStore) Put(key, value []byte) error {
	return s.src.Put(s.key(key), value)
}

func (s *bucketStore) Delete(key []byte) error {
	return s.src.Delete(s.key(key))
}

func (s *bucketStore) NewBatch() Batch {
	return &bucketBatch{s, s.src.NewBatch()}
}

func (s *bucketStore) Close() error {
	return s.src.Close()
}

type bucketBatch struct {
	store *bucketStore
	src   Batch
}

func (b *bucketBatch) Put(key, value []byte) error {
	return b.src.Put(b.store.key(key), value)
}

func (b *bucketBatch) Delete(key []byte) error {
	return b.src.Delete(b.store.key(key))
}

func (b *bucketBatch) Len() int {
	return b.src.Len()
}

func (b *bucketBatch) Write() error {
	return b.src.Write()
}
