// Package cflp - bootstrap solution generator.
//
// The starting point of the outer search is deliberately NOT cost-greedy:
// the opening is sampled at random and the assignment balances load by
// remaining capacity, producing a feasible but typically expensive solution.
// Starting high gives the annealer room to show improvement and avoids
// biasing the facility search toward the greedy heuristic's preferences.
package cflp

import (
	"math/rand"
	"sort"
)

// initialAttempts bounds the random-opening rejection sampler before the
// generator falls back to the deterministic largest-capacity opening.
const initialAttempts = 256

// InitialSolution produces a feasible capacity-balancing bootstrap solution
// under the open-facility cap k.
//
// Opening decision:
//   - k == m: open everything (always feasible; total capacity covers total
//     demand by Problem construction).
//   - k < m: rejection-sample a random opening of 1..k facilities until its
//     aggregate capacity covers aggregate demand; after initialAttempts
//     failed draws, fall back to opening the k largest-capacity facilities
//     (ties to the lower index). If even that fallback cannot cover demand,
//     no opening of size <= k can, and ErrNoFeasibleOpening is returned.
//
// Assignment: for each client, repeatedly send demand to whichever open
// facility currently has the LARGEST remaining capacity (not the cheapest),
// splitting across facilities as needed. This balances load instead of
// minimizing cost - the cost-greedy heuristic is reserved for the search
// itself.
//
// Complexity: O(initialAttempts*m + n*m) time, O(n*m) space.
func InitialSolution(p *Problem, k int, rng *rand.Rand) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if k < 1 || k > p.m {
		return nil, ErrFacilityCapRange
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	open, err := initialOpening(p, k, r)
	if err != nil {
		return nil, err
	}

	return newSolution(p, open, balanceAssign(p, open)), nil
}

// initialOpening draws a cap-respecting opening whose capacity covers demand.
func initialOpening(p *Problem, k int, rng *rand.Rand) ([]bool, error) {
	open := make([]bool, p.m)

	// Shortcut: with no binding cap the all-open vector is feasible by the
	// Problem-level capacity invariant and trivially cheap to validate.
	if k == p.m {
		var j int
		for j = 0; j < p.m; j++ {
			open[j] = true
		}

		return open, nil
	}

	var (
		attempt int
		count   int // number of facilities opened in this draw
		j       int
	)
	perm := make([]int, p.m)
	for attempt = 0; attempt < initialAttempts; attempt++ {
		for j = 0; j < p.m; j++ {
			open[j] = false
			perm[j] = j
		}
		// Open a uniformly random subset of size 1..k.
		count = 1 + rng.Intn(k)
		shuffleInts(perm, rng)
		for j = 0; j < count; j++ {
			open[perm[j]] = true
		}
		if p.openCapacity(open) >= p.totalDemand {
			return open, nil
		}
	}

	// Deterministic fallback: the k largest-capacity facilities. If this
	// opening cannot cover demand, no opening under the cap can.
	for j = 0; j < p.m; j++ {
		open[j] = false
		perm[j] = j
	}
	sortByCapacityDesc(p, perm)
	for j = 0; j < k; j++ {
		open[perm[j]] = true
	}
	if p.openCapacity(open) < p.totalDemand {
		return nil, ErrNoFeasibleOpening
	}

	return open, nil
}

// balanceAssign spreads each client's demand over the open facility with the
// largest remaining capacity, splitting when one facility cannot absorb the
// rest. Assumes open capacity covers total demand (guaranteed by the
// opening stage); the inner break is a belt-and-braces guard only.
func balanceAssign(p *Problem, open []bool) [][]int {
	var (
		assign = newAssignment(p.m, p.n)
		remain = make([]int, p.m)
	)

	var j int
	for j = 0; j < p.m; j++ {
		if open[j] {
			remain[j] = p.capacity[j]
		}
	}

	var (
		i      int
		need   int
		widest int // open facility with the largest remaining capacity
		amount int
	)
	for i = 0; i < p.n; i++ {
		need = p.demand[i]
		for need > 0 {
			widest = -1
			for j = 0; j < p.m; j++ {
				if remain[j] > 0 && (widest < 0 || remain[j] > remain[widest]) {
					widest = j
				}
			}
			if widest < 0 {
				break
			}

			amount = need
			if remain[widest] < amount {
				amount = remain[widest]
			}
			assign[widest][i] += amount
			remain[widest] -= amount
			need -= amount
		}
	}

	return assign
}

// shuffleInts performs an in-place Fisher-Yates shuffle.
//
// Complexity: O(len(a)).
func shuffleInts(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sortByCapacityDesc orders facility indices by descending capacity with the
// lower index winning ties, so the fallback opening is fully deterministic.
func sortByCapacityDesc(p *Problem, idx []int) {
	sort.Slice(idx, func(a, b int) bool {
		if p.capacity[idx[a]] != p.capacity[idx[b]] {
			return p.capacity[idx[a]] > p.capacity[idx[b]]
		}

		return idx[a] < idx[b]
	})
}
