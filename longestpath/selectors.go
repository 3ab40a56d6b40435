package longestpath

import (
	"sort"

	"github.com/katalvlaran/longpath/core"
)

// maxTieSelector picks uniformly among the heaviest candidates; with
// probability jumpProb, and only when more than one candidate exists, it
// picks uniformly among all candidates instead.
type maxTieSelector struct {
	jumpProb float64
	ties     []core.Neighbor
}

func (s *maxTieSelector) Choose(step *Step) (core.Neighbor, bool) {
	c := step.Candidates
	if len(c) > 1 && step.Rand.Float64() < s.jumpProb {
		return pick(step.Rand, c), true
	}

	maxW := c[0].Weight
	for _, nb := range c[1:] {
		if nb.Weight > maxW {
			maxW = nb.Weight
		}
	}
	s.ties = s.ties[:0]
	for _, nb := range c {
		if nb.Weight == maxW {
			s.ties = append(s.ties, nb)
		}
	}

	return pick(step.Rand, s.ties), true
}

// topKSelector picks uniformly among the k heaviest candidates. Equal
// weights keep adjacency order (stable sort).
type topKSelector struct {
	k int
}

func (s topKSelector) Choose(step *Step) (core.Neighbor, bool) {
	c := step.Candidates
	sortByWeightDesc(c)
	if len(c) > s.k {
		c = c[:s.k]
	}

	return pick(step.Rand, c), true
}

// epsilonGreedySelector picks uniformly among all candidates when a draw is
// <= prob, else the first heaviest candidate.
type epsilonGreedySelector struct {
	prob float64
}

func (s epsilonGreedySelector) Choose(step *Step) (core.Neighbor, bool) {
	if step.Rand.Float64() <= s.prob {
		return pick(step.Rand, step.Candidates), true
	}

	return firstHeaviest(step.Candidates), true
}

// thresholdSelector takes the first candidate, in adjacency order, whose
// edge weight strictly exceeds the trajectory's accumulated weight, and ends
// the trajectory when none does.
type thresholdSelector struct{}

func (thresholdSelector) Choose(step *Step) (core.Neighbor, bool) {
	for _, nb := range step.Candidates {
		if nb.Weight > step.Weight {
			return nb, true
		}
	}

	return core.Neighbor{}, false
}

// greedyMaxSelector takes the first heaviest candidate. Deterministic.
type greedyMaxSelector struct{}

func (greedyMaxSelector) Choose(step *Step) (core.Neighbor, bool) {
	return firstHeaviest(step.Candidates), true
}

// firstHeaviest returns the earliest candidate of maximum weight. c must be non-empty.
func firstHeaviest(c []core.Neighbor) core.Neighbor {
	best := c[0]
	for _, nb := range c[1:] {
		if nb.Weight > best.Weight {
			best = nb
		}
	}

	return best
}

func sortByWeightDesc(c []core.Neighbor) {
	sort.SliceStable(c, func(i, j int) bool { return c[i].Weight > c[j].Weight })
}
