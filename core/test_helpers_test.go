// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for longpath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Avoid magic numbers in test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
)

// Common vertex ids used across core tests.
const (
	VA = 0
	VB = 1
	VC = 2
	VD = 3
	VE = 4
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
	Weight7 = 7.0
)

// Common concurrency sizes.
const (
	NReaders = 32
	NRounds  = 200
)

// buildChain returns A-B-C-D with weights 1, 2, 3.
func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.InsertEdge(VA, VB, Weight1))
	require.NoError(t, g.InsertEdge(VB, VC, Weight2))
	require.NoError(t, g.InsertEdge(VC, VD, Weight3))

	return g
}

// buildTriangle returns A-B(3), B-C(5), A-C(1).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(3)
	require.NoError(t, g.InsertEdge(VA, VB, Weight3))
	require.NoError(t, g.InsertEdge(VB, VC, Weight5))
	require.NoError(t, g.InsertEdge(VA, VC, Weight1))

	return g
}

// neighborIDs projects a neighbor list onto its vertex ids.
func neighborIDs(nbs []core.Neighbor) []int {
	out := make([]int, len(nbs))
	for i, nb := range nbs {
		out[i] = nb.To
	}

	return out
}
