// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/gitter-badger/foundry/foundry"
	"github.com/gitter-badger/foundry/kv"
)

// Stater is the top cache creator. It keeps recently used snapshots warm in
// memory so a new execution context for a known state root starts from a
// cloned cache instead of cold read-through.
type Stater struct {
	snapshots *SnapshotStore
	warm      *lru.ARCCache
}

// NewStater creates a stater over the given kv store.
func NewStater(store kv.Store) *Stater {
	warm, _ := lru.NewARC(16)
	return &Stater{
		snapshots: NewSnapshotStore(store),
		warm:      warm,
	}
}

// State returns a top cache for the given state root. The caller owns the
// returned cache exclusively; it never aliases caches handed out earlier.
// Fails with ErrSnapshotNotFound when the root has no saved snapshot.
func (s *Stater) State(root foundry.Bytes32) (*TopCache, error) {
	if cached, ok := s.warm.Get(root); ok {
		return cached.(*TopCache).Copy(), nil
	}
	c, err := s.snapshots.Load(root)
	if err != nil {
		return nil, err
	}
	s.warm.Add(root, c.Copy())
	return c, nil
}

// Save persists the committed top cache under the given root and keeps a
// warm clone.
func (s *Stater) Save(root foundry.Bytes32, c *TopCache) error {
	if err := s.snapshots.Save(root, c); err != nil {
		return err
	}
	s.warm.Add(root, c.Copy())
	return nil
}
