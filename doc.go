// Package cflp solves the capacitated facility location problem (CFLP) with
// a combined two-layer simulated-annealing metaheuristic.
//
// The problem: choose a subset of facilities to open and split each client's
// demand across open facilities, minimizing fixed opening cost plus variable
// service cost, subject to per-facility capacities and a cap k on the number
// of open facilities.
//
// The search couples two annealing loops:
//
//   - Outer layer - anneals over facility decisions. Each proposal toggles
//     one facility (FlipFacility), swapping another one shut when the open
//     cap would overflow, rebuilds the assignment with the cost-greedy
//     heuristic (GreedyAssign), and repairs infeasible flips by redrawing
//     within a bounded attempt budget.
//   - Inner layer - anneals over assignments with the opening frozen
//     (AnnealAssignment), shifting random demand quantities between
//     facilities (TransferDemand). Both layers cool geometrically and share
//     the Metropolis acceptance rule.
//
// Building blocks are exported individually (CheckFeasibility, GreedyAssign,
// InitialSolution, FlipFacility, TransferDemand, AnnealAssignment) so they
// can be tested, benchmarked or recombined; Solve wires them into the full
// two-layer search and SolveConcurrent runs a best-of-N ensemble on
// independent derived RNG streams.
//
// Guarantees and policies:
//
//   - Heuristic, not exact: results carry no optimality bound. Exact solving
//     belongs to an external mixed-integer solver.
//   - Deterministic: every stochastic component takes an explicit seedable
//     RNG; identical inputs and options reproduce identical runs.
//   - Immutable values: Problem is validated once and shared read-only;
//     Solution snapshots are never mutated after construction.
//   - Strict sentinels, no logging: failures are errors.Is-comparable values
//     from types.go, diagnostics are plain data (Feasibility, Result).
//
// Quick start:
//
//	p, err := cflp.NewProblem(fixedCost, varCost, capacity, demand)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := cflp.Solve(p, 2, cflp.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.OpenFacilities())
//
// Companion packages: dataset (YAML instance files + deterministic random
// instance synthesis) and report (1-based textual rendering of results).
package cflp
