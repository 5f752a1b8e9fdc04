// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages the top-level state of the chain.
//
// It follows the flow below:
//
//	            o
//	            |
//	      [ top cache ]
//	            |
//	 [ write-back caches x5 ] -> [ commit ] -> [ updated trie ]
//	            |
//	    [ read-only trie ]
//
// A caller takes a checkpoint before a risky operation, reads and writes
// through the typed accessors, then discards the checkpoint on success or
// reverts to it on failure. Commit flushes all dirty entries to the trie.
package state
