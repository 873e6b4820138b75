// Package cflp - feasibility predicate.
package cflp

// CheckFeasibility evaluates the four feasibility conditions of a candidate
// solution under the open-facility cap k and returns them as a fixed-shape
// diagnostic record:
//
//  1. demand coverage: every client's demand is served exactly;
//  2. capacity respect: no facility serves beyond its capacity;
//  3. open cap: at most k facilities are open;
//  4. at least one facility is open.
//
// The predicate is pure: no side effects, no logging. Note that condition 2
// deliberately does not verify that closed facilities carry zero assignment;
// every generator in this package constructs assignments over open
// facilities only, so the stricter check would only ever re-verify their
// postcondition.
//
// Complexity: O(n*m).
func CheckFeasibility(p *Problem, s *Solution, k int) Feasibility {
	var (
		f    Feasibility
		i, j int
		sum  int
	)

	// Condition 1 - per-client coverage.
	f.DemandCovered = true
	for i = 0; i < p.n; i++ {
		sum = 0
		for j = 0; j < p.m; j++ {
			sum += s.assign[j][i]
		}
		if sum != p.demand[i] {
			f.DemandCovered = false
			break
		}
	}

	// Condition 2 - per-facility capacity.
	f.CapacityRespected = true
	for j = 0; j < p.m; j++ {
		sum = 0
		for i = 0; i < p.n; i++ {
			sum += s.assign[j][i]
		}
		if sum > p.capacity[j] {
			f.CapacityRespected = false
			break
		}
	}

	// Conditions 3 and 4 - open-facility count against cap and floor.
	openCount := s.OpenCount()
	f.WithinOpenCap = openCount <= k
	f.AnyOpen = openCount >= 1

	return f
}

// IsFeasible reports whether all four feasibility conditions hold.
//
// Complexity: O(n*m).
func IsFeasible(p *Problem, s *Solution, k int) bool {
	return CheckFeasibility(p, s, k).OK()
}
