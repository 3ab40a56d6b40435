// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// constants.go - constructor names and size limits.

package builder

// Constructor names prefix every construction error.
const (
	nameCycle             = "Cycle"
	namePath              = "Path"
	nameStar              = "Star"
	nameWheel             = "Wheel"
	nameComplete          = "Complete"
	nameCompleteBipartite = "CompleteBipartite"
	nameRandomSparse      = "RandomSparse"
	nameRandomRegular     = "RandomRegular"
	nameGrid              = "Grid"
)

// Smallest accepted sizes; smaller requests fail with ErrTooFewVertices.
const (
	MinCycleNodes    = 3 // a ring needs three distinct pairs
	MinPathNodes     = 2
	MinStarNodes     = 2 // hub plus one leaf
	MinWheelNodes    = 4 // hub plus a 3-cycle
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
	MinRandomNodes   = 1
)

// Bounds of RandomSparse's edge probability, both inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular's shuffle-and-match retries.
const maxStubMatchingAttempts = 1000
