// Package cflp - neighborhood move generators.
//
// Two feasibility-preserving proposers drive the coupled search loops:
//
//   - FlipFacility (outer move): toggle one facility and rebuild the whole
//     assignment with the cost-greedy heuristic. Infeasible flips are
//     repaired by redrawing the flipped index, bounded by an explicit
//     attempt budget (a saturated neighborhood surfaces as
//     ErrNoFeasibleNeighbor rather than spinning forever).
//
//   - TransferDemand (inner move): keep the opening fixed and shift a random
//     quantity of one client's demand from a serving facility to one with
//     free capacity. Per-client totals are preserved by construction, so the
//     move can never break demand coverage or capacity limits.
package cflp

import "math/rand"

// transferAttempts bounds the resampling loop of TransferDemand. Draws are
// rejected when the source facility equals the destination (a no-op that
// would stall exploration for a whole temperature level) or when the drawn
// client is served only by the destination.
const transferAttempts = 64

// FlipFacility proposes an outer-layer neighbor of s: the open/closed status
// of one uniformly random facility is toggled, the assignment is rebuilt
// with GreedyAssign, and the candidate is returned iff it passes the full
// feasibility check under cap k. Up to attempts indices are drawn (with
// replacement) before the generator gives up with ErrNoFeasibleNeighbor.
//
// Cap repair: when the toggle opens a facility while the solution already
// sits at the cap, the move also closes one uniformly random other open
// facility. Without this swap the k-sized openings are unreachable from one
// another by single toggles (every pure toggle either exceeds the cap or
// drops capacity), and the outer search would stall at its bootstrap
// whenever the cap binds.
//
// Complexity: O(attempts * n*m) worst case.
func FlipFacility(p *Problem, s *Solution, k int, attempts int, rng *rand.Rand) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if s == nil {
		return nil, ErrNilSolution
	}
	if attempts <= 0 {
		return nil, ErrBadFlipAttempts
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var (
		attempt int
		j, c    int
		count   int
		open    []bool
		others  []int // open facilities other than the toggled one
		cand    *Solution
	)
	for attempt = 0; attempt < attempts; attempt++ {
		j = r.Intn(p.m)
		open = s.cloneOpen()
		open[j] = !open[j]

		count = 0
		others = others[:0]
		for c = 0; c < p.m; c++ {
			if open[c] {
				count++
				if c != j {
					others = append(others, c)
				}
			}
		}
		if count == 0 {
			// Toggled the only open facility shut; nothing to assign to.
			continue
		}
		if count > k && open[j] {
			// Cap repair: opening j overflowed the cap, close a random other
			// open facility so the proposal stays a candidate under k.
			open[others[r.Intn(len(others))]] = false
		}

		cand = newSolution(p, open, GreedyAssign(p, open))
		if IsFeasible(p, cand, k) {
			return cand, nil
		}
	}

	return nil, ErrNoFeasibleNeighbor
}

// TransferDemand proposes an inner-layer neighbor of s with the facility
// decision held fixed: a uniformly random quantity in
// [1, min(freeCapacity[jFree], assign[jFrom][i])] of client i's demand moves
// from a random serving facility jFrom to a random facility jFree with free
// capacity.
//
// Degenerate draws (jFrom == jFree, or no serving facility other than the
// destination) are resampled up to transferAttempts times; when no
// productive move exists - a single open facility, or no free capacity
// anywhere - the receiver itself is returned unchanged. Returning s is safe:
// solutions are immutable snapshots.
//
// Complexity: O(m + n) per draw after an O(n*m) load scan.
func TransferDemand(p *Problem, s *Solution, rng *rand.Rand) *Solution {
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	// Free capacity per facility: capacity for open ones minus current load.
	// Closed facilities stay at zero and can never be chosen as destination.
	var (
		free   = make([]int, p.m)
		jList  = make([]int, 0, p.m) // facilities with free capacity
		j, i   int
		served []int
	)
	for j = 0; j < p.m; j++ {
		if s.open[j] {
			free[j] = p.capacity[j] - s.Load(j)
			if free[j] > 0 {
				jList = append(jList, j)
			}
		}
	}
	if len(jList) == 0 {
		return s
	}

	var (
		attempt int
		jFree   int
		jFrom   int
		amount  int
		bound   int
	)
	for attempt = 0; attempt < transferAttempts; attempt++ {
		jFree = jList[r.Intn(len(jList))]
		i = r.Intn(p.n)

		// Facilities currently serving client i, destination excluded.
		served = served[:0]
		for j = 0; j < p.m; j++ {
			if j != jFree && s.assign[j][i] > 0 {
				served = append(served, j)
			}
		}
		if len(served) == 0 {
			continue
		}
		jFrom = served[r.Intn(len(served))]

		bound = free[jFree]
		if s.assign[jFrom][i] < bound {
			bound = s.assign[jFrom][i]
		}
		amount = 1 + r.Intn(bound)

		assign := s.cloneAssign()
		assign[jFrom][i] -= amount
		assign[jFree][i] += amount

		return newSolution(p, s.cloneOpen(), assign)
	}

	return s
}
