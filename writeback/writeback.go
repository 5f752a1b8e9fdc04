// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package writeback implements a checkpointable read-through/write-back cache
// over a single trie namespace.
//
// Mutations are held in memory and flushed to the trie only on Commit.
// Checkpoint/RevertToCheckpoint give all-or-nothing rollback: each checkpoint
// frame journals the first pre-modification state of every slot touched since
// the frame was pushed, so reverting restores exactly the state at the time
// the checkpoint was taken.
package writeback

import (
	"bytes"
	"iter"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/gitter-badger/foundry/trie"
)

// Address constrains cache key types. Bytes is the canonical trie key
// encoding of the address.
type Address interface {
	comparable
	Bytes() []byte
}

// Item constrains cached value types. Copy returns a deep copy; the zero
// value of an Item type must be its well-defined default.
type Item[T any] interface {
	Copy() T
}

// entry is one cache slot. A nil value is a tombstone: the record is deleted
// in memory and Commit turns it into a trie removal.
type entry[T Item[T]] struct {
	value *T
	dirty bool
}

func (e *entry[T]) copy() *entry[T] {
	cpy := entry[T]{dirty: e.dirty}
	if e.value != nil {
		v := (*e.value).Copy()
		cpy.value = &v
	}
	return &cpy
}

// frame journals the slot state to restore on revert, keyed by address.
// A nil entry means the address was not resident when first touched; revert
// then evicts the slot so the next access loads through again.
type frame[A Address, T Item[T]] map[A]*entry[T]

// Cache is a single-namespace write-back cache keyed by A, holding values of
// type T encoded to the trie as RLP.
//
// Once an address is loaded it stays resident for the cache's lifetime; there
// is no eviction. The cache is meant for exclusive use by one execution
// context and is not safe for concurrent mutation.
type Cache[A Address, T Item[T]] struct {
	entries     map[A]*entry[T]
	checkpoints []frame[A, T]
}

// New creates a cache whose slots are seeded from the given sequence,
// typically the exported items of a previously committed cache. Seeded
// entries are clean. A nil seed yields an empty cache.
func New[A Address, T Item[T]](seed iter.Seq2[A, T]) *Cache[A, T] {
	c := &Cache[A, T]{entries: make(map[A]*entry[T])}
	if seed != nil {
		for a, v := range seed {
			v := v.Copy()
			c.entries[a] = &entry[T]{value: &v}
		}
	}
	return c
}

// Get returns the value at the given address, or nil if the record is absent
// or deleted. Missing slots are loaded through db and stay resident; a
// resident slot never touches db again.
//
// The returned value is a copy; mutating it does not affect the cache.
func (c *Cache[A, T]) Get(a A, db trie.Trie) (*T, error) {
	if e, ok := c.entries[a]; ok {
		if e.value == nil {
			return nil, nil
		}
		v := (*e.value).Copy()
		return &v, nil
	}
	e, err := c.load(a, db)
	if err != nil {
		return nil, err
	}
	if e.value == nil {
		return nil, nil
	}
	v := (*e.value).Copy()
	return &v, nil
}

// GetMut returns a mutable handle over the in-cache value at the given
// address, loading through db on miss and defaulting to the zero value if the
// record is absent or deleted. The slot is journaled into the active
// checkpoint frame and marked dirty before the handle is returned, so caller
// mutations are covered by the checkpoint and flushed by the next Commit.
//
// The handle points into the cache slot: mutations through it are immediately
// visible to subsequent Get/GetMut calls, and handles for distinct addresses
// stay simultaneously usable.
func (c *Cache[A, T]) GetMut(a A, db trie.Trie) (*T, error) {
	e, ok := c.entries[a]
	if !ok {
		c.journal(a)
		var err error
		if e, err = c.load(a, db); err != nil {
			return nil, err
		}
	} else {
		c.journal(a)
	}
	if e.value == nil {
		var v T
		e.value = &v
	}
	e.dirty = true
	return e.value, nil
}

// Remove tombstones the record at the given address. The removal is
// journaled like any other mutation and a later Commit emits a trie deletion,
// whether or not the trie ever held the key.
func (c *Cache[A, T]) Remove(a A) {
	c.journal(a)
	if e, ok := c.entries[a]; ok {
		e.value = nil
		e.dirty = true
		return
	}
	c.entries[a] = &entry[T]{dirty: true}
}

// load reads the address through the trie and installs a clean slot:
// a decoded value if the trie holds the key, a tombstone otherwise.
func (c *Cache[A, T]) load(a A, db trie.Trie) (*entry[T], error) {
	data, err := db.Get(a.Bytes())
	if err != nil {
		return nil, err
	}
	e := &entry[T]{}
	if len(data) > 0 {
		var v T
		if err := rlp.DecodeBytes(data, &v); err != nil {
			return nil, err
		}
		e.value = &v
	}
	c.entries[a] = e
	return e, nil
}

// journal records the current slot state into the active frame, once per
// address per frame. The first recorded snapshot wins; later mutations of the
// same address inside the frame leave it untouched.
func (c *Cache[A, T]) journal(a A) {
	if len(c.checkpoints) == 0 {
		return
	}
	top := c.checkpoints[len(c.checkpoints)-1]
	if _, recorded := top[a]; recorded {
		return
	}
	if e, ok := c.entries[a]; ok {
		top[a] = e.copy()
	} else {
		top[a] = nil
	}
}

// Checkpoint pushes a new, empty checkpoint frame.
func (c *Cache[A, T]) Checkpoint() {
	c.checkpoints = append(c.checkpoints, make(frame[A, T]))
}

// DiscardCheckpoint accepts all mutations made since the last Checkpoint and
// pops its frame. The popped journal is folded into the enclosing frame so an
// outer revert can still restore the state from before the discarded frame:
// for every address, the oldest snapshot wins.
func (c *Cache[A, T]) DiscardCheckpoint() {
	top := c.popFrame()
	if len(c.checkpoints) == 0 {
		return
	}
	next := c.checkpoints[len(c.checkpoints)-1]
	for a, snapshot := range top {
		if _, recorded := next[a]; !recorded {
			next[a] = snapshot
		}
	}
}

// RevertToCheckpoint undoes every mutation made since the last Checkpoint and
// pops its frame. Journaled slots are restored verbatim, dirty flags
// included; slots that were not resident when first touched are evicted.
func (c *Cache[A, T]) RevertToCheckpoint() {
	top := c.popFrame()
	for a, snapshot := range top {
		if snapshot == nil {
			delete(c.entries, a)
		} else {
			c.entries[a] = snapshot
		}
	}
}

func (c *Cache[A, T]) popFrame() frame[A, T] {
	if len(c.checkpoints) == 0 {
		panic("writeback: checkpoint stack underflow")
	}
	top := c.checkpoints[len(c.checkpoints)-1]
	c.checkpoints = c.checkpoints[:len(c.checkpoints)-1]
	return top
}

// Depth returns the checkpoint stack depth.
func (c *Cache[A, T]) Depth() int {
	return len(c.checkpoints)
}

// Commit flushes every dirty slot into the trie, in ascending address byte
// order, and marks it clean. Present values become inserts, tombstones become
// removals.
//
// Commit is resumable, not atomic: on the first trie failure it stops and
// returns the error, leaving already flushed slots clean and the remaining
// ones dirty, so a retry after resolving the trie problem picks up where it
// left off.
func (c *Cache[A, T]) Commit(t trie.TrieMut) error {
	addrs := make([]A, 0, len(c.entries))
	for a, e := range c.entries {
		if e.dirty {
			addrs = append(addrs, a)
		}
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i].Bytes(), addrs[j].Bytes()) < 0
	})

	for _, a := range addrs {
		e := c.entries[a]
		if e.value == nil {
			if err := t.Delete(a.Bytes()); err != nil {
				return err
			}
		} else {
			data, err := rlp.EncodeToBytes(e.value)
			if err != nil {
				return err
			}
			if err := t.Update(a.Bytes(), data); err != nil {
				return err
			}
		}
		e.dirty = false
	}
	return nil
}

// Cached is one exported cache slot.
type Cached[A Address, T Item[T]] struct {
	Address A
	Value   *T // nil for tombstones
}

// Items exports every resident slot and its current value, in unspecified
// order. Values are copies.
func (c *Cache[A, T]) Items() []Cached[A, T] {
	items := make([]Cached[A, T], 0, len(c.entries))
	for a, e := range c.entries {
		item := Cached[A, T]{Address: a}
		if e.value != nil {
			v := (*e.value).Copy()
			item.Value = &v
		}
		items = append(items, item)
	}
	return items
}

// Copy deep-copies the cache, checkpoint stack included. The copy shares no
// mutable state with the original.
func (c *Cache[A, T]) Copy() *Cache[A, T] {
	cpy := &Cache[A, T]{
		entries: make(map[A]*entry[T], len(c.entries)),
	}
	for a, e := range c.entries {
		cpy.entries[a] = e.copy()
	}
	if len(c.checkpoints) > 0 {
		cpy.checkpoints = make([]frame[A, T], len(c.checkpoints))
		for i, f := range c.checkpoints {
			fc := make(frame[A, T], len(f))
			for a, snapshot := range f {
				if snapshot == nil {
					fc[a] = nil
				} else {
					fc[a] = snapshot.copy()
				}
			}
			cpy.checkpoints[i] = fc
		}
	}
	return cpy
}

// Len returns the number of resident slots.
func (c *Cache[A, T]) Len() int {
	return len(c.entries)
}
