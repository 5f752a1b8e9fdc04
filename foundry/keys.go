// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package foundry

import "encoding/binary"

// Trie key prefixes of the typed state namespaces. Account addresses are
// stored raw (20 bytes) and action-data keys raw (32 bytes); the remaining
// namespaces are 32-byte keys starting with one of these bytes.
const (
	prefixRegularAccount = 'R'
	prefixMetadata       = 'M'
	prefixShard          = 'S'
)

// RegularAccountAddress is the trie key of a regular account record.
type RegularAccountAddress Bytes32

// RegularAccountAddressFromPublic derives the regular account key from the
// regular key pair's public key.
func RegularAccountAddressFromPublic(pub []byte) RegularAccountAddress {
	h := Blake2b(pub)
	var a RegularAccountAddress
	a[0] = prefixRegularAccount
	copy(a[1:], h[1:])
	return a
}

// Bytes returns byte slice form of the address.
func (a RegularAccountAddress) Bytes() []byte { return a[:] }

// String implements the stringer interface.
func (a RegularAccountAddress) String() string { return Bytes32(a).String() }

// MetadataAddress is the trie key of the chain metadata record.
// The metadata record is a singleton living at a fixed key.
type MetadataAddress Bytes32

// NewMetadataAddress returns the fixed key of the metadata record.
func NewMetadataAddress() MetadataAddress {
	var a MetadataAddress
	a[0] = prefixMetadata
	return a
}

// Bytes returns byte slice form of the address.
func (a MetadataAddress) Bytes() []byte { return a[:] }

// String implements the stringer interface.
func (a MetadataAddress) String() string { return Bytes32(a).String() }

// ShardAddress is the trie key of a shard record.
type ShardAddress Bytes32

// NewShardAddress builds the shard record key for the given shard id.
func NewShardAddress(shardID uint16) ShardAddress {
	var a ShardAddress
	a[0] = prefixShard
	binary.BigEndian.PutUint16(a[30:], shardID)
	return a
}

// ShardID extracts the shard id the address was built from.
func (a ShardAddress) ShardID() uint16 {
	return binary.BigEndian.Uint16(a[30:])
}

// Bytes returns byte slice form of the address.
func (a ShardAddress) Bytes() []byte { return a[:] }

// String implements the stringer interface.
func (a ShardAddress) String() string { return Bytes32(a).String() }
