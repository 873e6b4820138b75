// Package cflp - cost-greedy assignment heuristic.
//
// GreedyAssign rebuilds the full demand-to-facility assignment for a fixed
// open/closed decision. It is the workhorse behind every facility flip: the
// outer search never patches an assignment after changing the opening, it
// reassigns from scratch and lets the inner annealer refine the result.
package cflp

// GreedyAssign allocates every client's demand to open facilities in
// ascending variable-cost order, ties broken by the lowest facility index.
//
// Mechanics: each client gets a weight per facility - its variable cost when
// the facility is open and has remaining capacity, or an exclusion sentinel
// otherwise (closed facilities weigh sum(varCost)+1, exhausted ones
// max(varCost)+1). Selection is a plain argmin over the weight slice, so
// removing a facility from consideration is a single weight write, never a
// resize. When a facility's remaining capacity hits zero it is re-weighted
// to the exhaustion sentinel and the loop continues with the next cheapest.
//
// Best-effort contract: the loop stops after m*n allocations even if demand
// remains unserved (or as soon as no serviceable facility is left), and the
// partial assignment is returned as-is. Callers that need a guarantee check
// the result with CheckFeasibility; given aggregate open capacity >= total
// demand the budget is never hit and coverage is exact.
//
// Pure function: no RNG, no global state.
//
// Complexity: O(n*m) allocations worst case, each preceded by an O(m) argmin.
func GreedyAssign(p *Problem, open []bool) [][]int {
	var (
		assign = newAssignment(p.m, p.n)
		remain = make([]int, p.m)     // remaining capacity per facility
		weight = make([]float64, p.m) // per-client selection weights
	)

	var j int
	for j = 0; j < p.m; j++ {
		remain[j] = p.capacity[j]
	}

	var (
		i      int
		need   int // unserved demand of the current client
		best   int // argmin index over weight
		amount int // units allocated in this step
		steps  int // global allocation counter, capped at m*n
		budget = p.m * p.n
	)
	for i = 0; i < p.n; i++ {
		// Weights for this client: real costs for serviceable facilities,
		// sentinels for the rest.
		for j = 0; j < p.m; j++ {
			switch {
			case !open[j]:
				weight[j] = p.excludeClosed
			case remain[j] == 0:
				weight[j] = p.excludeExhausted
			default:
				weight[j] = p.varCost[i][j]
			}
		}

		need = p.demand[i]
		for need > 0 && steps < budget {
			steps++

			// Argmin with first-occurrence tie break.
			best = 0
			for j = 1; j < p.m; j++ {
				if weight[j] < weight[best] {
					best = j
				}
			}
			if weight[best] >= p.excludeExhausted {
				// Only sentinels left: no serviceable facility remains for
				// this client. Best-effort: keep the partial allocation.
				break
			}

			amount = need
			if remain[best] < amount {
				amount = remain[best]
			}
			assign[best][i] += amount
			remain[best] -= amount
			need -= amount

			if remain[best] == 0 {
				weight[best] = p.excludeExhausted
			}
		}
	}

	return assign
}
