// Package cflp - immutable problem instance.
//
// A Problem is validated exactly once at construction and shared read-only by
// every search component afterwards; all derived quantities (dimensions,
// totals, greedy exclusion sentinels) are computed in NewProblem and never
// recomputed. Violations of the construction invariants are fatal for the
// instance: the constructor returns a sentinel and no Problem is produced.
package cflp

// Problem is an immutable, validated CFLP instance.
//
// Dimensions: m facilities, n clients. The variable-cost matrix is stored
// client-major (varCost[i][j] = cost of serving one unit of client i's demand
// from facility j), matching the input orientation; assignment matrices are
// facility-major (see Solution).
type Problem struct {
	fixedCost []float64   // length m
	varCost   [][]float64 // n rows x m cols
	capacity  []int       // length m
	demand    []int       // length n

	m int // number of facilities
	n int // number of clients

	totalCapacity int
	totalDemand   int

	// Greedy exclusion sentinels: both strictly exceed every real variable
	// cost, so a facility weighted with either can never win the argmin while
	// a serviceable facility remains.
	excludeClosed    float64 // sum of all variable costs + 1 (closed facility)
	excludeExhausted float64 // maximum variable cost + 1 (capacity used up)
}

// NewProblem validates the four input arrays and returns an immutable
// instance. All slices are copied defensively; the caller keeps ownership of
// its arguments.
//
// Validation stages (each failure is a distinct sentinel):
//  1. Shape: len(fixedCost)==len(capacity)==m, varCost is n x m with
//     n==len(demand).
//  2. Value domain: costs non-negative, capacities and demands positive.
//  3. Aggregate: total demand must not exceed total capacity.
//
// Complexity: O(n*m) time and space.
func NewProblem(fixedCost []float64, varCost [][]float64, capacity, demand []int) (*Problem, error) {
	// Stage 1 - shape.
	m := len(capacity)
	n := len(demand)
	if len(fixedCost) != m {
		return nil, ErrFixedCostLength
	}
	if len(varCost) != n {
		return nil, ErrVarCostRows
	}

	var (
		i, j int
		p    = &Problem{m: m, n: n}
	)
	for i = 0; i < n; i++ {
		if len(varCost[i]) != m {
			return nil, ErrVarCostCols
		}
	}

	// Stage 2 - value domain + derived sentinels in a single pass.
	var (
		sumVar float64 // running sum of all variable costs
		maxVar float64 // running maximum variable cost
		c      float64 // current variable-cost entry
	)
	p.fixedCost = make([]float64, m)
	for j = 0; j < m; j++ {
		if fixedCost[j] < 0 {
			return nil, ErrNegativeCost
		}
		p.fixedCost[j] = fixedCost[j]
	}
	p.varCost = make([][]float64, n)
	for i = 0; i < n; i++ {
		p.varCost[i] = make([]float64, m)
		for j = 0; j < m; j++ {
			c = varCost[i][j]
			if c < 0 {
				return nil, ErrNegativeCost
			}
			p.varCost[i][j] = c
			sumVar += c
			if c > maxVar {
				maxVar = c
			}
		}
	}
	p.capacity = make([]int, m)
	for j = 0; j < m; j++ {
		if capacity[j] <= 0 {
			return nil, ErrNonPositiveCapacity
		}
		p.capacity[j] = capacity[j]
		p.totalCapacity += capacity[j]
	}
	p.demand = make([]int, n)
	for i = 0; i < n; i++ {
		if demand[i] <= 0 {
			return nil, ErrNonPositiveDemand
		}
		p.demand[i] = demand[i]
		p.totalDemand += demand[i]
	}

	// Stage 3 - aggregate feasibility.
	if p.totalDemand > p.totalCapacity {
		return nil, ErrDemandExceedsCapacity
	}

	p.excludeClosed = sumVar + 1
	p.excludeExhausted = maxVar + 1

	return p, nil
}

// Facilities returns m, the number of facilities.
func (p *Problem) Facilities() int { return p.m }

// Clients returns n, the number of clients.
func (p *Problem) Clients() int { return p.n }

// FixedCost returns the opening cost of facility j.
func (p *Problem) FixedCost(j int) float64 { return p.fixedCost[j] }

// VarCost returns the per-unit cost of serving client i from facility j.
func (p *Problem) VarCost(i, j int) float64 { return p.varCost[i][j] }

// Capacity returns the capacity of facility j.
func (p *Problem) Capacity(j int) int { return p.capacity[j] }

// Demand returns the demand of client i.
func (p *Problem) Demand(i int) int { return p.demand[i] }

// TotalCapacity returns the aggregate capacity over all facilities.
func (p *Problem) TotalCapacity() int { return p.totalCapacity }

// TotalDemand returns the aggregate demand over all clients.
func (p *Problem) TotalDemand() int { return p.totalDemand }

// openCapacity sums the capacity of facilities marked open.
//
// Complexity: O(m).
func (p *Problem) openCapacity(open []bool) int {
	var (
		j   int
		sum int
	)
	for j = 0; j < p.m; j++ {
		if open[j] {
			sum += p.capacity[j]
		}
	}

	return sum
}
