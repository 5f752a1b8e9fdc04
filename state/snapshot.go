// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"iter"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/gitter-badger/foundry/foundry"
	"github.com/gitter-badger/foundry/kv"
	"github.com/gitter-badger/foundry/writeback"
)

// ErrSnapshotNotFound is returned when no snapshot exists for the requested
// state root.
var ErrSnapshotNotFound = errors.New("state snapshot not found")

const snapshotBucket = kv.Bucket("state.snapshot")

// Snapshot row kinds, appended to the state root to key one row per entity
// kind.
const (
	kindAccount byte = iota
	kindRegularAccount
	kindMetadata
	kindShard
	kindActionData
)

// SnapshotStore persists the exported items of committed top caches, keyed by
// state root, so a later execution context for a known root can seed its
// caches without walking the trie.
type SnapshotStore struct {
	store kv.Store
}

// NewSnapshotStore creates a snapshot store inside the given kv store.
func NewSnapshotStore(store kv.Store) *SnapshotStore {
	return &SnapshotStore{snapshotBucket.NewStore(store)}
}

// snapshotRow is one persisted cache slot. Tombstones are not persisted:
// a snapshot describes committed state, where deleted records simply do not
// exist.
type snapshotRow[A writeback.Address, T writeback.Item[T]] struct {
	Address A
	Data    T
}

func snapshotKey(root foundry.Bytes32, kind byte) []byte {
	return append(root.Bytes(), kind)
}

func putRows[A writeback.Address, T writeback.Item[T]](
	b kv.Batch, root foundry.Bytes32, kind byte, items []writeback.Cached[A, T],
) error {
	rows := make([]snapshotRow[A, T], 0, len(items))
	for _, item := range items {
		if item.Value == nil {
			continue
		}
		rows = append(rows, snapshotRow[A, T]{item.Address, *item.Value})
	}
	data, err := rlp.EncodeToBytes(rows)
	if err != nil {
		return errors.Wrap(err, "encode snapshot rows")
	}
	return b.Put(snapshotKey(root, kind), data)
}

func getRows[A writeback.Address, T writeback.Item[T]](
	g kv.Getter, root foundry.Bytes32, kind byte,
) ([]snapshotRow[A, T], error) {
	data, err := g.Get(snapshotKey(root, kind))
	if err != nil {
		if g.IsNotFound(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, errors.Wrap(err, "read snapshot rows")
	}
	var rows []snapshotRow[A, T]
	if err := rlp.DecodeBytes(data, &rows); err != nil {
		return nil, errors.Wrap(err, "decode snapshot rows")
	}
	return rows, nil
}

func rowSeq[A writeback.Address, T writeback.Item[T]](rows []snapshotRow[A, T]) iter.Seq2[A, T] {
	return func(yield func(A, T) bool) {
		for _, row := range rows {
			if !yield(row.Address, row.Data) {
				return
			}
		}
	}
}

// Save persists the resident, non-tombstoned slots of the given top cache
// under the given state root. All five entity kinds are written in one batch.
func (s *SnapshotStore) Save(root foundry.Bytes32, c *TopCache) error {
	batch := s.store.NewBatch()
	if err := putRows(batch, root, kindAccount, c.CachedAccounts()); err != nil {
		return err
	}
	if err := putRows(batch, root, kindRegularAccount, c.CachedRegularAccounts()); err != nil {
		return err
	}
	if err := putRows(batch, root, kindMetadata, c.CachedMetadata()); err != nil {
		return err
	}
	if err := putRows(batch, root, kindShard, c.CachedShards()); err != nil {
		return err
	}
	if err := putRows(batch, root, kindActionData, c.CachedActionData()); err != nil {
		return err
	}
	return batch.Write()
}

// Load rebuilds a top cache seeded from the snapshot stored under the given
// state root. It fails with ErrSnapshotNotFound when no snapshot exists.
func (s *SnapshotStore) Load(root foundry.Bytes32) (*TopCache, error) {
	accounts, err := getRows[foundry.Address, Account](s.store, root, kindAccount)
	if err != nil {
		return nil, err
	}
	regularAccounts, err := getRows[foundry.RegularAccountAddress, RegularAccount](s.store, root, kindRegularAccount)
	if err != nil {
		return nil, err
	}
	metadata, err := getRows[foundry.MetadataAddress, Metadata](s.store, root, kindMetadata)
	if err != nil {
		return nil, err
	}
	shards, err := getRows[foundry.ShardAddress, Shard](s.store, root, kindShard)
	if err != nil {
		return nil, err
	}
	actionData, err := getRows[foundry.Bytes32, ActionData](s.store, root, kindActionData)
	if err != nil {
		return nil, err
	}
	return NewTopCache(
		rowSeq(accounts),
		rowSeq(regularAccounts),
		rowSeq(metadata),
		rowSeq(shards),
		rowSeq(actionData),
	), nil
}

// Has reports whether a snapshot exists for the given state root.
func (s *SnapshotStore) Has(root foundry.Bytes32) (bool, error) {
	return s.store.Has(snapshotKey(root, kindAccount))
}
