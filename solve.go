// Package cflp - outer annealing loop and entry points.
//
// Solve runs the combined two-layer search: the outer layer anneals over
// facility decisions (one flip per proposal, assignment rebuilt greedily),
// and every outer proposal is refined by the inner layer before the
// Metropolis comparison. SolveConcurrent layers a best-of-N ensemble on top,
// one goroutine and one derived RNG stream per restart.
package cflp

import (
	"sync"
	"time"
)

// Solve searches for a low-cost feasible solution of p under the
// open-facility cap k and returns it as a fixed-shape Result.
//
// Lifecycle (same three states as the inner layer):
//   - INITIALIZE: current := best := capacity-balancing bootstrap (always
//     feasible, or the search fails fast with ErrNoFeasibleOpening).
//   - COOL: per proposal, FlipFacility produces a feasible facility decision
//     plus its greedy assignment, AnnealAssignment refines it, then the
//     candidate faces the standard acceptance rule. best advances only when
//     the candidate additionally passes the full feasibility check under k.
//   - TERMINATE: on FinalTemp, an expired TimeLimit, or a saturated flip
//     neighborhood (no feasible single-flip neighbor within the attempt
//     budget - with one facility there is nothing left to search).
//
// Soft-fail policy: should best somehow never pass the feasibility check,
// the Result still carries it with Feasible=false; emitting a warning is the
// caller's concern, the library stays log-free.
//
// Determinism: one RNG stream drives the whole run, so identical inputs and
// options reproduce the identical sequence of accepted candidates
// (TimeLimit=0; a wall-clock budget naturally breaks reproducibility).
//
// Complexity: O(outerLevels * OuterIterations * (FlipAttempts + innerCost))
// with innerCost as documented on AnnealAssignment.
func Solve(p *Problem, k int, opts Options) (Result, error) {
	start := time.Now()

	// Stage 1 - validation.
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if k < 1 || k > p.m {
		return Result{}, ErrFacilityCapRange
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	// Stage 2 - bootstrap.
	var (
		rng      = rngFromSeed(opts.Seed)
		deadline = deadlineFrom(start, opts.TimeLimit)
		evals    int
	)
	current, err := InitialSolution(p, k, rng)
	if err != nil {
		return Result{}, err
	}
	evals++

	var (
		best         = current
		bestFeasible = IsFeasible(p, best, k)
		flip         *Solution
		cand         *Solution
		t            float64
		it           int
	)

	// Stage 3 - cooling.
cooling:
	for t = opts.Outer.InitialTemp; t > opts.Outer.FinalTemp; t *= opts.Outer.Alpha {
		if expired(deadline) {
			break
		}

		for it = 0; it < opts.Outer.Iterations; it++ {
			flip, err = FlipFacility(p, current, k, opts.FlipAttempts, rng)
			if err != nil {
				// Saturated neighborhood: every reachable flip is infeasible,
				// so further proposals would fail the same way.
				break cooling
			}

			cand = annealAssignment(p, flip, opts.Inner, rng, deadline, &evals)
			evals++

			if feasible := IsFeasible(p, cand, k); feasible {
				if !bestFeasible || cand.cost < best.cost {
					best = cand
					bestFeasible = true
				}
			}
			if accept(current.cost, cand.cost, t, rng) {
				current = cand
			}
		}
	}

	// Stage 4 - report.
	return Result{
		Cost:        best.cost,
		Open:        best.Open(),
		Assignment:  best.Assignment(),
		Feasible:    bestFeasible,
		Evaluations: evals,
		Duration:    time.Since(start),
	}, nil
}

// SolveConcurrent runs restarts independent Solve invocations in parallel
// and returns the best feasible outcome (lowest cost; ties keep the lowest
// restart index for determinism). Each restart owns a private RNG stream
// derived from opts.Seed, so runs never share mutable state and the ensemble
// is reproducible as a whole.
//
// If no restart produces a feasible result, the lowest-cost infeasible one
// is returned, mirroring Solve's soft-fail policy. The first hard error (bad
// input, no feasible opening) is returned only when every restart failed
// with one.
//
// Complexity: restarts full Solve runs, executed concurrently.
func SolveConcurrent(p *Problem, k int, opts Options, restarts int) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if restarts <= 0 {
		return Result{}, ErrBadRestarts
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var (
		results = make([]Result, restarts)
		errs    = make([]error, restarts)
		base    = rngFromSeed(opts.Seed)
		wg      sync.WaitGroup
		w       int
	)
	for w = 0; w < restarts; w++ {
		// Derivation consumes the base stream sequentially, so seeds depend
		// only on opts.Seed and the restart index.
		runOpts := opts
		runOpts.Seed = deriveSeed(base.Int63(), uint64(w))

		wg.Add(1)
		go func(idx int, o Options) {
			defer wg.Done()
			results[idx], errs[idx] = Solve(p, k, o)
		}(w, runOpts)
	}
	wg.Wait()

	var (
		bestIdx  = -1
		feasible bool
		i        int
	)
	for i = 0; i < restarts; i++ {
		if errs[i] != nil {
			continue
		}
		switch {
		case bestIdx < 0:
			bestIdx, feasible = i, results[i].Feasible
		case results[i].Feasible && !feasible:
			bestIdx, feasible = i, true
		case results[i].Feasible == feasible && results[i].Cost < results[bestIdx].Cost:
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		// Every restart failed with an error; surface the first one.
		return Result{}, errs[0]
	}

	return results[bestIdx], nil
}
