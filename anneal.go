// Package cflp - inner annealing loop (assignment refinement).
//
// The inner layer runs classic Metropolis annealing over demand-transfer
// moves with the facility decision frozen. No feasibility re-check happens
// here: the caller hands in a solution whose opening is already feasible,
// and TransferDemand preserves per-client coverage and per-facility capacity
// by construction.
package cflp

import (
	"math"
	"math/rand"
	"time"
)

// AnnealAssignment locally optimizes the assignment of s under its fixed
// facility decision using the Inner schedule of opts and returns the best
// solution encountered. The input solution is never mutated.
//
// Determinism: identical (s, opts) pairs reproduce identical results;
// opts.Seed==0 selects the fixed default stream.
//
// Complexity: O(levels * Iterations * n*m) where levels is the number of
// cooling steps of the inner schedule.
func AnnealAssignment(p *Problem, s *Solution, opts Options) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if s == nil {
		return nil, ErrNilSolution
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var evals int

	return annealAssignment(p, s, opts.Inner, rngFromSeed(opts.Seed),
		deadlineFrom(time.Now(), opts.TimeLimit), &evals), nil
}

// annealAssignment is the shared inner loop used by both AnnealAssignment
// and the outer solver (which passes its own RNG, deadline and evaluation
// counter so that a whole run stays one deterministic stream).
//
// State machine per call:
//   - INITIALIZE: current := s; best := s.
//   - COOL: while T > FinalTemp, propose Iterations demand transfers;
//     track best, always accept improvements, accept degradations with
//     probability exp((current.cost-candidate.cost)/T); then T *= Alpha.
//   - TERMINATE: on FinalTemp or an expired deadline; return best.
func annealAssignment(p *Problem, s *Solution, sched Schedule, rng *rand.Rand, deadline time.Time, evals *int) *Solution {
	var (
		current = s
		best    = s
		cand    *Solution
		t       float64
		it      int
	)
	for t = sched.InitialTemp; t > sched.FinalTemp; t *= sched.Alpha {
		// Cooperative budget check, once per cooling step.
		if expired(deadline) {
			break
		}

		for it = 0; it < sched.Iterations; it++ {
			cand = TransferDemand(p, current, rng)
			*evals++

			if cand.cost < best.cost {
				best = cand
			}
			if accept(current.cost, cand.cost, t, rng) {
				current = cand
			}
		}
	}

	return best
}

// accept implements the Metropolis criterion: improvements are always taken,
// degradations with probability exp((currCost-candCost)/T). For a worse
// candidate the exponent is non-positive, keeping the probability in (0,1].
func accept(currCost, candCost, temp float64, rng *rand.Rand) bool {
	if candCost < currCost {
		return true
	}

	return rng.Float64() < math.Exp((currCost-candCost)/temp)
}
