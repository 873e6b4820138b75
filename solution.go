// Package cflp - immutable candidate solutions.
//
// A Solution is a snapshot: an open/closed vector, a facility-major
// assignment matrix and the eagerly computed objective value. The search
// never mutates a Solution; "changing" one always means constructing a new
// value from the old one's fields. Thousands of snapshots are created and
// discarded per run, so internal constructors take ownership of their slices
// while the public constructor copies defensively.
package cflp

// Solution is an immutable candidate: which facilities are open and how
// client demand is split across them, with the derived total cost cached.
type Solution struct {
	open   []bool  // length m
	assign [][]int // m rows x n cols; assign[j][i] = units of client i at facility j
	cost   float64 // fixed + variable cost, computed once at construction
}

// NewSolution builds a Solution from caller-owned data, with defensive
// copies and shape validation. Feasibility is NOT checked here: synthetic
// (even deliberately infeasible) solutions are legal values, which is what
// lets the feasibility predicate be tested in isolation.
//
// Complexity: O(n*m) time and space.
func NewSolution(p *Problem, open []bool, assign [][]int) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if len(open) != p.m || len(assign) != p.m {
		return nil, ErrSolutionShape
	}

	var (
		j, i int
		o    = make([]bool, p.m)
		a    = make([][]int, p.m)
	)
	copy(o, open)
	for j = 0; j < p.m; j++ {
		if len(assign[j]) != p.n {
			return nil, ErrSolutionShape
		}
		a[j] = make([]int, p.n)
		for i = 0; i < p.n; i++ {
			if assign[j][i] < 0 {
				return nil, ErrNegativeAssignment
			}
			a[j][i] = assign[j][i]
		}
	}

	return newSolution(p, o, a), nil
}

// newSolution is the internal fast-path constructor: it takes ownership of
// open and assign (callers must not retain them) and computes the cached
// cost. Shapes are trusted; generators only ever build well-shaped slices.
func newSolution(p *Problem, open []bool, assign [][]int) *Solution {
	return &Solution{
		open:   open,
		assign: assign,
		cost:   solutionCost(p, open, assign),
	}
}

// solutionCost recomputes the objective from scratch:
//
//	sum_j fixedCost[j]*open[j]  +  sum_{i,j} varCost[i][j]*assign[j][i]
//
// The cached Solution.cost must always equal this value; the summation order
// (fixed costs first, then clients outer / facilities inner) is part of the
// contract so that exact float64 equality is reproducible.
//
// Complexity: O(n*m).
func solutionCost(p *Problem, open []bool, assign [][]int) float64 {
	var (
		j, i  int
		total float64
	)
	for j = 0; j < p.m; j++ {
		if open[j] {
			total += p.fixedCost[j]
		}
	}
	for i = 0; i < p.n; i++ {
		for j = 0; j < p.m; j++ {
			if assign[j][i] != 0 {
				total += p.varCost[i][j] * float64(assign[j][i])
			}
		}
	}

	return total
}

// Cost returns the cached objective value.
func (s *Solution) Cost() float64 { return s.cost }

// IsOpen reports whether facility j is open.
func (s *Solution) IsOpen(j int) bool { return s.open[j] }

// OpenCount returns the number of open facilities.
//
// Complexity: O(m).
func (s *Solution) OpenCount() int {
	var j, count int
	for j = 0; j < len(s.open); j++ {
		if s.open[j] {
			count++
		}
	}

	return count
}

// Open returns a copy of the open/closed vector.
//
// Complexity: O(m) time and space.
func (s *Solution) Open() []bool {
	out := make([]bool, len(s.open))
	copy(out, s.open)

	return out
}

// Assigned returns the amount of client i's demand served by facility j.
func (s *Solution) Assigned(j, i int) int { return s.assign[j][i] }

// Load returns the total demand currently served by facility j.
//
// Complexity: O(n).
func (s *Solution) Load(j int) int {
	var i, sum int
	for i = 0; i < len(s.assign[j]); i++ {
		sum += s.assign[j][i]
	}

	return sum
}

// Assignment returns a deep copy of the m x n assignment matrix.
//
// Complexity: O(n*m) time and space.
func (s *Solution) Assignment() [][]int {
	out := make([][]int, len(s.assign))

	var j int
	for j = 0; j < len(s.assign); j++ {
		out[j] = make([]int, len(s.assign[j]))
		copy(out[j], s.assign[j])
	}

	return out
}

// cloneOpen returns an owned copy of the open vector for move generators.
func (s *Solution) cloneOpen() []bool {
	out := make([]bool, len(s.open))
	copy(out, s.open)

	return out
}

// cloneAssign returns an owned deep copy of the assignment matrix for move
// generators.
func (s *Solution) cloneAssign() [][]int {
	out := make([][]int, len(s.assign))

	var j int
	for j = 0; j < len(s.assign); j++ {
		out[j] = make([]int, len(s.assign[j]))
		copy(out[j], s.assign[j])
	}

	return out
}

// newAssignment allocates an all-zero m x n assignment matrix.
func newAssignment(m, n int) [][]int {
	out := make([][]int, m)

	var j int
	for j = 0; j < m; j++ {
		out[j] = make([]int, n)
	}

	return out
}
