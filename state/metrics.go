// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/gitter-badger/foundry/metrics"

var metricStateCount = metrics.LazyLoadCounterVec("state_cache_count", []string{"kind", "op"})

func countState(kind, op string) {
	metricStateCount().AddWithLabel(1, map[string]string{"kind": kind, "op": op})
}
