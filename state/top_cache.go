// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"iter"
	"sort"

	"github.com/gitter-badger/foundry/foundry"
	"github.com/gitter-badger/foundry/trie"
	"github.com/gitter-badger/foundry/writeback"
)

// TopCache is the aggregate state cache: five write-back caches, one per
// entity kind, sharing one trie and driven in lockstep so that checkpoint,
// revert and discard always apply to all five consistently.
//
// Like the sub-caches it composes, a TopCache belongs to exactly one
// execution context at a time.
type TopCache struct {
	account        *writeback.Cache[foundry.Address, Account]
	regularAccount *writeback.Cache[foundry.RegularAccountAddress, RegularAccount]
	metadata       *writeback.Cache[foundry.MetadataAddress, Metadata]
	shard          *writeback.Cache[foundry.ShardAddress, Shard]
	actionData     *writeback.Cache[foundry.Bytes32, ActionData]
}

// NewTopCache builds the aggregate from per-kind seed sequences. Nil seeds
// yield empty sub-caches.
func NewTopCache(
	accounts iter.Seq2[foundry.Address, Account],
	regularAccounts iter.Seq2[foundry.RegularAccountAddress, RegularAccount],
	metadata iter.Seq2[foundry.MetadataAddress, Metadata],
	shards iter.Seq2[foundry.ShardAddress, Shard],
	actionData iter.Seq2[foundry.Bytes32, ActionData],
) *TopCache {
	return &TopCache{
		account:        writeback.New(accounts),
		regularAccount: writeback.New(regularAccounts),
		metadata:       writeback.New(metadata),
		shard:          writeback.New(shards),
		actionData:     writeback.New(actionData),
	}
}

// Checkpoint pushes a checkpoint frame on all five sub-caches.
func (c *TopCache) Checkpoint() {
	c.account.Checkpoint()
	c.regularAccount.Checkpoint()
	c.metadata.Checkpoint()
	c.shard.Checkpoint()
	c.actionData.Checkpoint()
	c.assertLockstep()
}

// DiscardCheckpoint accepts the mutations of the innermost checkpoint on all
// five sub-caches.
func (c *TopCache) DiscardCheckpoint() {
	c.account.DiscardCheckpoint()
	c.regularAccount.DiscardCheckpoint()
	c.metadata.DiscardCheckpoint()
	c.shard.DiscardCheckpoint()
	c.actionData.DiscardCheckpoint()
	c.assertLockstep()
}

// RevertToCheckpoint undoes the mutations of the innermost checkpoint on all
// five sub-caches.
func (c *TopCache) RevertToCheckpoint() {
	c.account.RevertToCheckpoint()
	c.regularAccount.RevertToCheckpoint()
	c.metadata.RevertToCheckpoint()
	c.shard.RevertToCheckpoint()
	c.actionData.RevertToCheckpoint()
	c.assertLockstep()
}

// assertLockstep enforces the aggregate invariant: all five sub-caches hold
// the same checkpoint depth. A mismatch is a programmer error.
func (c *TopCache) assertLockstep() {
	d := c.account.Depth()
	if c.regularAccount.Depth() != d ||
		c.metadata.Depth() != d ||
		c.shard.Depth() != d ||
		c.actionData.Depth() != d {
		panic("state: checkpoint depth out of lockstep")
	}
}

// Depth returns the shared checkpoint stack depth.
func (c *TopCache) Depth() int {
	c.assertLockstep()
	return c.account.Depth()
}

// Commit flushes all dirty entries into the trie, one entity kind at a time
// in fixed order. It short-circuits on the first trie failure; kinds flushed
// before the failing one stay committed and the rest stays dirty, so a retry
// resumes correctly.
func (c *TopCache) Commit(t trie.TrieMut) error {
	countState("all", "commit")
	if err := c.account.Commit(t); err != nil {
		return &Error{err}
	}
	if err := c.regularAccount.Commit(t); err != nil {
		return &Error{err}
	}
	if err := c.metadata.Commit(t); err != nil {
		return &Error{err}
	}
	if err := c.shard.Commit(t); err != nil {
		return &Error{err}
	}
	if err := c.actionData.Commit(t); err != nil {
		return &Error{err}
	}
	return nil
}

// Account returns the account at the given address, nil if absent.
func (c *TopCache) Account(a foundry.Address, db trie.Trie) (*Account, error) {
	countState("account", "get")
	v, err := c.account.Get(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// AccountMut returns a mutable handle over the account at the given address,
// journaled and marked dirty.
func (c *TopCache) AccountMut(a foundry.Address, db trie.Trie) (*Account, error) {
	countState("account", "get_mut")
	v, err := c.account.GetMut(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// RemoveAccount tombstones the account at the given address.
func (c *TopCache) RemoveAccount(a foundry.Address) {
	countState("account", "remove")
	c.account.Remove(a)
}

// RegularAccount returns the regular account record at the given address,
// nil if absent.
func (c *TopCache) RegularAccount(a foundry.RegularAccountAddress, db trie.Trie) (*RegularAccount, error) {
	countState("regular_account", "get")
	v, err := c.regularAccount.Get(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// RegularAccountMut returns a mutable handle over the regular account record.
func (c *TopCache) RegularAccountMut(a foundry.RegularAccountAddress, db trie.Trie) (*RegularAccount, error) {
	countState("regular_account", "get_mut")
	v, err := c.regularAccount.GetMut(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// RemoveRegularAccount tombstones the regular account record.
func (c *TopCache) RemoveRegularAccount(a foundry.RegularAccountAddress) {
	countState("regular_account", "remove")
	c.regularAccount.Remove(a)
}

// Metadata returns the metadata record, nil if absent.
func (c *TopCache) Metadata(a foundry.MetadataAddress, db trie.Trie) (*Metadata, error) {
	countState("metadata", "get")
	v, err := c.metadata.Get(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// MetadataMut returns a mutable handle over the metadata record.
func (c *TopCache) MetadataMut(a foundry.MetadataAddress, db trie.Trie) (*Metadata, error) {
	countState("metadata", "get_mut")
	v, err := c.metadata.GetMut(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// RemoveMetadata tombstones the metadata record.
func (c *TopCache) RemoveMetadata(a foundry.MetadataAddress) {
	countState("metadata", "remove")
	c.metadata.Remove(a)
}

// Shard returns the shard record at the given address, nil if absent.
func (c *TopCache) Shard(a foundry.ShardAddress, db trie.Trie) (*Shard, error) {
	countState("shard", "get")
	v, err := c.shard.Get(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// ShardMut returns a mutable handle over the shard record.
func (c *TopCache) ShardMut(a foundry.ShardAddress, db trie.Trie) (*Shard, error) {
	countState("shard", "get_mut")
	v, err := c.shard.GetMut(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// RemoveShard tombstones the shard record.
func (c *TopCache) RemoveShard(a foundry.ShardAddress) {
	countState("shard", "remove")
	c.shard.Remove(a)
}

// ActionData returns the action data blob at the given key, nil if absent.
func (c *TopCache) ActionData(a foundry.Bytes32, db trie.Trie) (*ActionData, error) {
	countState("action_data", "get")
	v, err := c.actionData.Get(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// ActionDataMut returns a mutable handle over the action data blob.
func (c *TopCache) ActionDataMut(a foundry.Bytes32, db trie.Trie) (*ActionData, error) {
	countState("action_data", "get_mut")
	v, err := c.actionData.GetMut(a, db)
	if err != nil {
		return nil, &Error{err}
	}
	return v, nil
}

// RemoveActionData tombstones the action data blob.
func (c *TopCache) RemoveActionData(a foundry.Bytes32) {
	countState("action_data", "remove")
	c.actionData.Remove(a)
}

// CachedAccounts exports the resident account slots, sorted by address.
func (c *TopCache) CachedAccounts() []writeback.Cached[foundry.Address, Account] {
	return sortedItems(c.account.Items())
}

// CachedRegularAccounts exports the resident regular account slots, sorted by
// address.
func (c *TopCache) CachedRegularAccounts() []writeback.Cached[foundry.RegularAccountAddress, RegularAccount] {
	return sortedItems(c.regularAccount.Items())
}

// CachedMetadata exports the resident metadata slots, sorted by address.
func (c *TopCache) CachedMetadata() []writeback.Cached[foundry.MetadataAddress, Metadata] {
	return sortedItems(c.metadata.Items())
}

// CachedShards exports the resident shard slots, sorted by address.
func (c *TopCache) CachedShards() []writeback.Cached[foundry.ShardAddress, Shard] {
	return sortedItems(c.shard.Items())
}

// CachedActionData exports the resident action data slots, sorted by key.
func (c *TopCache) CachedActionData() []writeback.Cached[foundry.Bytes32, ActionData] {
	return sortedItems(c.actionData.Items())
}

func sortedItems[A writeback.Address, T writeback.Item[T]](items []writeback.Cached[A, T]) []writeback.Cached[A, T] {
	sort.Slice(items, func(i, j int) bool {
		return bytes.Compare(items[i].Address.Bytes(), items[j].Address.Bytes()) < 0
	})
	return items
}

// Copy deep-copies the aggregate, checkpoint stacks included.
func (c *TopCache) Copy() *TopCache {
	return &TopCache{
		account:        c.account.Copy(),
		regularAccount: c.regularAccount.Copy(),
		metadata:       c.metadata.Copy(),
		shard:          c.shard.Copy(),
		actionData:     c.actionData.Copy(),
	}
}
