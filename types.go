// Package cflp - sentinel errors and result types shared by all solver stages.
//
// Design principles:
//   - Strict sentinels: every failure mode is a distinct errors.Is-comparable
//     value; no fmt.Errorf in hot paths, no panics on user input.
//   - Fixed-shape results: the solver reports through Result and Feasibility
//     records, never through dynamically-keyed containers.
package cflp

import (
	"errors"
	"time"
)

// Construction-time sentinels (unrecoverable; the caller must fix the input).
var (
	// ErrNilProblem indicates that a nil *Problem was passed to an operation.
	ErrNilProblem = errors.New("cflp: problem is nil")

	// ErrNilSolution indicates that a nil *Solution was passed to an operation.
	ErrNilSolution = errors.New("cflp: solution is nil")

	// ErrDemandExceedsCapacity indicates that aggregate client demand is larger
	// than aggregate facility capacity, so no full assignment can exist.
	ErrDemandExceedsCapacity = errors.New("cflp: total demand exceeds total capacity")

	// ErrFixedCostLength indicates len(fixedCost) != len(capacity).
	ErrFixedCostLength = errors.New("cflp: fixed-cost length does not match facility count")

	// ErrVarCostRows indicates that the variable-cost matrix has a row count
	// different from the number of clients (len(demand)).
	ErrVarCostRows = errors.New("cflp: variable-cost row count does not match client count")

	// ErrVarCostCols indicates that some variable-cost row has a column count
	// different from the number of facilities (len(capacity)).
	ErrVarCostCols = errors.New("cflp: variable-cost column count does not match facility count")

	// ErrNegativeCost indicates a negative fixed or variable cost entry.
	ErrNegativeCost = errors.New("cflp: cost entries must be non-negative")

	// ErrNonPositiveCapacity indicates a facility capacity <= 0.
	ErrNonPositiveCapacity = errors.New("cflp: facility capacity must be positive")

	// ErrNonPositiveDemand indicates a client demand <= 0.
	ErrNonPositiveDemand = errors.New("cflp: client demand must be positive")
)

// Solution-shape sentinels.
var (
	// ErrSolutionShape indicates that the open vector or assignment matrix
	// dimensions do not match the problem (m facilities x n clients).
	ErrSolutionShape = errors.New("cflp: solution shape does not match problem")

	// ErrNegativeAssignment indicates a negative assignment amount.
	ErrNegativeAssignment = errors.New("cflp: assignment amounts must be non-negative")
)

// Option and search sentinels.
var (
	// ErrFacilityCapRange indicates that the open-facility cap k is outside [1, m].
	ErrFacilityCapRange = errors.New("cflp: open-facility cap out of range")

	// ErrBadTemperature indicates a schedule violating 0 < FinalTemp < InitialTemp.
	ErrBadTemperature = errors.New("cflp: temperatures must satisfy 0 < FinalTemp < InitialTemp")

	// ErrBadAlpha indicates a cooling factor outside the open interval (0,1).
	ErrBadAlpha = errors.New("cflp: cooling factor must lie in (0,1)")

	// ErrBadIterations indicates a non-positive per-temperature iteration count.
	ErrBadIterations = errors.New("cflp: iterations per temperature must be positive")

	// ErrBadFlipAttempts indicates a non-positive facility-flip attempt budget.
	ErrBadFlipAttempts = errors.New("cflp: flip attempt budget must be positive")

	// ErrBadTimeLimit indicates a negative wall-clock budget.
	ErrBadTimeLimit = errors.New("cflp: time limit must be non-negative")

	// ErrBadRestarts indicates a non-positive ensemble restart count.
	ErrBadRestarts = errors.New("cflp: restart count must be positive")

	// ErrNoFeasibleNeighbor is returned by FlipFacility when no feasible
	// single-flip neighbor was found within the attempt budget.
	ErrNoFeasibleNeighbor = errors.New("cflp: no feasible facility flip within attempt budget")

	// ErrNoFeasibleOpening is returned by InitialSolution when even the k
	// largest-capacity facilities cannot cover aggregate demand, i.e. the
	// instance admits no feasible solution under the cap.
	ErrNoFeasibleOpening = errors.New("cflp: no feasible opening within the facility cap")
)

// Feasibility is the fixed-shape diagnostic record produced by
// CheckFeasibility. Each field mirrors one feasibility condition; OK reports
// their conjunction. Consumers that want verbose reporting read the fields;
// the library itself never logs.
type Feasibility struct {
	// DemandCovered: every client's demand is met exactly.
	DemandCovered bool

	// CapacityRespected: no facility serves more than its capacity.
	CapacityRespected bool

	// WithinOpenCap: the number of open facilities does not exceed the cap k.
	WithinOpenCap bool

	// AnyOpen: at least one facility is open.
	AnyOpen bool
}

// OK reports whether all four feasibility conditions hold.
//
// Complexity: O(1).
func (f Feasibility) OK() bool {
	return f.DemandCovered && f.CapacityRespected && f.WithinOpenCap && f.AnyOpen
}

// Result is the fixed-shape outcome of Solve and SolveConcurrent.
//
// All indices are 0-based; presentation conventions (1-based numbering,
// rounding) belong to the formatting boundary, not here.
type Result struct {
	// Cost is the total objective value: fixed cost of open facilities plus
	// variable service cost of the assignment.
	Cost float64

	// Open[j] reports whether facility j is open. len(Open) == m.
	Open []bool

	// Assignment[j][i] is the amount of client i's demand served by facility j.
	// Shape: m x n.
	Assignment [][]int

	// Feasible reports whether the returned solution passed the full
	// feasibility check under the requested cap. The solver returns its best
	// candidate even when it never became feasible; callers must inspect this
	// flag before trusting Cost as an attainable objective.
	Feasible bool

	// Evaluations counts candidate solutions whose cost was evaluated.
	Evaluations int

	// Duration is the wall-clock time the search consumed.
	Duration time.Duration
}

// OpenFacilities returns the 0-based indices of open facilities in ascending
// order. Allocation is required by contract (fresh slice per call).
//
// Complexity: O(m) time, O(k) space.
func (r Result) OpenFacilities() []int {
	out := make([]int, 0, len(r.Open))

	var j int
	for j = 0; j < len(r.Open); j++ {
		if r.Open[j] {
			out = append(out, j)
		}
	}

	return out
}
