// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package foundry_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitter-badger/foundry/foundry"
)

func TestParseAddress(t *testing.T) {
	addr, err := foundry.ParseAddress("0x6fe3c7b54c30d4dbbd5bbd2ac2b1eaf7f8a9c358")
	assert.Nil(t, err)
	assert.Equal(t, "0x6fe3c7b54c30d4dbbd5bbd2ac2b1eaf7f8a9c358", addr.String())

	// 0x prefix is optional
	addr2, err := foundry.ParseAddress("6fe3c7b54c30d4dbbd5bbd2ac2b1eaf7f8a9c358")
	assert.Nil(t, err)
	assert.Equal(t, *addr, *addr2)

	for _, bad := range []string{
		"",
		"0x",
		"0x6fe3c7b54c30d4dbbd5bbd2ac2b1eaf7f8a9c3",     // short
		"0x6fe3c7b54c30d4dbbd5bbd2ac2b1eaf7f8a9c35800", // long
		"0x6fe3c7b54c30d4dbbd5bbd2ac2b1eaf7f8a9c35g",   // non-hex
	} {
		_, err := foundry.ParseAddress(bad)
		assert.NotNil(t, err, bad)
	}
}

func TestBytes32(t *testing.T) {
	b := foundry.Blake2b([]byte("hello"))
	assert.False(t, b.IsZero())
	assert.True(t, foundry.Bytes32{}.IsZero())

	parsed, err := foundry.ParseBytes32(b.String())
	assert.Nil(t, err)
	assert.Equal(t, b, parsed)

	data, err := json.Marshal(&b)
	assert.Nil(t, err)
	var back foundry.Bytes32
	assert.Nil(t, json.Unmarshal(data, &back))
	assert.Equal(t, b, back)
}

func TestBlake2b(t *testing.T) {
	// concatenated slices hash like the joined input
	joined := foundry.Blake2b([]byte("helloworld"))
	split := foundry.Blake2b([]byte("hello"), []byte("world"))
	assert.Equal(t, joined, split)
	assert.NotEqual(t, joined, foundry.Blake2b([]byte("hello")))
}

func TestPublicToAddress(t *testing.T) {
	pub := []byte("some public key bytes")
	addr := foundry.PublicToAddress(pub)
	h := foundry.Blake2b(pub)
	assert.Equal(t, h.Bytes()[12:], addr.Bytes())
}

func TestTypedAddresses(t *testing.T) {
	reg := foundry.RegularAccountAddressFromPublic([]byte("regular public key"))
	assert.Equal(t, byte('R'), reg.Bytes()[0])

	meta := foundry.NewMetadataAddress()
	assert.Equal(t, byte('M'), meta.Bytes()[0])

	shard := foundry.NewShardAddress(0x0102)
	assert.Equal(t, byte('S'), shard.Bytes()[0])
	assert.Equal(t, uint16(0x0102), shard.ShardID())

	// all typed keys are 32 bytes and distinct across namespaces
	assert.Equal(t, 32, len(reg.Bytes()))
	assert.Equal(t, 32, len(meta.Bytes()))
	assert.Equal(t, 32, len(shard.Bytes()))
	assert.NotEqual(t, meta.Bytes(), foundry.NewShardAddress(0).Bytes())
}
