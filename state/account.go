// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/pkg/errors"

// ErrInsufficientBalance is returned when a debit exceeds the account balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Account is the ledger representation of an account. RLP encoded objects are
// stored in the state trie, keyed by the 20-byte account address.
//
// The zero value is the empty account.
type Account struct {
	Balance uint64
	Seq     uint64
	// RegularKey is the public key of the regular key pair delegated to act
	// for this account. Empty when no regular key is registered.
	RegularKey []byte
}

// Copy returns a deep copy of the account.
func (a Account) Copy() Account {
	cpy := a
	if a.RegularKey != nil {
		cpy.RegularKey = append([]byte(nil), a.RegularKey...)
	}
	return cpy
}

// IsEmpty returns if the account carries no balance, no sequence and no
// regular key.
func (a *Account) IsEmpty() bool {
	return a.Balance == 0 && a.Seq == 0 && len(a.RegularKey) == 0
}

// AddBalance credits the account.
func (a *Account) AddBalance(amount uint64) {
	a.Balance += amount
}

// SubBalance debits the account. It fails without modifying the account when
// the balance is too low.
func (a *Account) SubBalance(amount uint64) error {
	if a.Balance < amount {
		return ErrInsufficientBalance
	}
	a.Balance -= amount
	return nil
}

// IncSeq bumps the transaction sequence.
func (a *Account) IncSeq() {
	a.Seq++
}

// SetRegularKey registers the regular key pair's public key.
func (a *Account) SetRegularKey(pub []byte) {
	a.RegularKey = append([]byte(nil), pub...)
}
