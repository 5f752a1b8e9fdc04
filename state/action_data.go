// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

// ActionData is an opaque blob a state action stores under a 32-byte key of
// its own choosing.
type ActionData []byte

// Copy returns a copy of the blob.
func (d ActionData) Copy() ActionData {
	if d == nil {
		return nil
	}
	return append(ActionData(nil), d...)
}
