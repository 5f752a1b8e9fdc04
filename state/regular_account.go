// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/gitter-badger/foundry/foundry"

// RegularAccount links a regular key back to the master account owning it.
// RLP encoded objects are stored in the state trie, keyed by
// foundry.RegularAccountAddress.
type RegularAccount struct {
	// OwnerPublic is the public key of the master account.
	OwnerPublic []byte
}

// Copy returns a deep copy of the record.
func (r RegularAccount) Copy() RegularAccount {
	cpy := r
	if r.OwnerPublic != nil {
		cpy.OwnerPublic = append([]byte(nil), r.OwnerPublic...)
	}
	return cpy
}

// OwnerAddress derives the master account's address.
func (r *RegularAccount) OwnerAddress() foundry.Address {
	return foundry.PublicToAddress(r.OwnerPublic)
}
