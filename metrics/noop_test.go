// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	noop := defaultNoopMetrics()

	count := noop.GetOrCreateCountMeter("count1")
	countVec := noop.GetOrCreateCountVecMeter("count_vec1", []string{"kind"})
	gauge := noop.GetOrCreateGaugeMeter("gauge1")

	// no-op meters accept anything without panicking
	count.Add(1)
	countVec.AddWithLabel(1, map[string]string{"thisIsNonsense": "butDoesntBreak"})
	gauge.Add(1)
	gauge.Set(-1)

	require.Nil(t, noop.GetOrCreateHandler())
}
