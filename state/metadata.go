// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

// Metadata is the chain-wide bookkeeping record. It is a singleton living at
// the fixed foundry.MetadataAddress key.
type Metadata struct {
	NumberOfShards uint16
	Seq            uint64
}

// Copy returns a copy of the record.
func (m Metadata) Copy() Metadata {
	return m
}

// AddShard allocates the next shard id and bumps the shard count.
func (m *Metadata) AddShard() uint16 {
	id := m.NumberOfShards
	m.NumberOfShards++
	return id
}

// IncSeq bumps the metadata change sequence.
func (m *Metadata) IncSeq() {
	m.Seq++
}
