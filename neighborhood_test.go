// Package cflp_test - neighborhood move generators.
package cflp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflp"
)

// TestTransferDemand_Conservation: a transfer changes exactly two facility
// loads by the same amount and leaves every per-client total untouched.
func TestTransferDemand_Conservation(t *testing.T) {
	p := tinyProblem(t)

	// Both clients fully on facility 0; facility 1 idle with free capacity.
	assign := assignMatrix(2, 2)
	assign[0][0] = 5
	assign[0][1] = 5
	s := mustSolution(t, p, []bool{true, true}, assign)

	next := cflp.TransferDemand(p, s, rand.New(rand.NewSource(3)))
	require.NotSame(t, s, next, "a productive move must exist here")

	// Per-client totals unchanged.
	for i := 0; i < p.Clients(); i++ {
		total := next.Assigned(0, i) + next.Assigned(1, i)
		assert.Equal(t, p.Demand(i), total, "client %d total", i)
	}

	// Facility 0 sheds exactly what facility 1 gains.
	moved := s.Load(0) - next.Load(0)
	assert.Positive(t, moved)
	assert.Equal(t, moved, next.Load(1)-s.Load(1))

	// The opening is untouched and the original snapshot is unmodified.
	assert.Equal(t, s.Open(), next.Open())
	assert.Equal(t, 5, s.Assigned(0, 0))
	assert.Equal(t, 5, s.Assigned(0, 1))

	// Moves preserve feasibility by construction.
	assert.True(t, cflp.IsFeasible(p, next, 2))
}

// TestTransferDemand_NoProductiveMove: with a single open facility there is
// no destination other than the source, so the receiver comes back as-is.
func TestTransferDemand_NoProductiveMove(t *testing.T) {
	p, err := cflp.NewProblem(
		[]float64{1},
		[][]float64{{1}},
		[]int{10},
		[]int{5},
	)
	require.NoError(t, err)

	assign := [][]int{{5}}
	s := mustSolution(t, p, []bool{true}, assign)

	next := cflp.TransferDemand(p, s, rand.New(rand.NewSource(1)))
	assert.Same(t, s, next)
}

// TestTransferDemand_NoFreeCapacity: saturated facilities cannot receive,
// so no move is proposed.
func TestTransferDemand_NoFreeCapacity(t *testing.T) {
	p, err := cflp.NewProblem(
		[]float64{1, 1},
		[][]float64{{1, 2}, {2, 1}},
		[]int{5, 5},
		[]int{5, 5},
	)
	require.NoError(t, err)

	assign := assignMatrix(2, 2)
	assign[0][0] = 5
	assign[1][1] = 5 // both facilities full
	s := mustSolution(t, p, []bool{true, true}, assign)

	next := cflp.TransferDemand(p, s, rand.New(rand.NewSource(1)))
	assert.Same(t, s, next)
}

// TestFlipFacility_ProducesFeasibleNeighbor: from a cap-saturated opening
// the generator still reaches a different feasible opening (via the cap
// repair swap) and rebuilds a full greedy assignment.
func TestFlipFacility_ProducesFeasibleNeighbor(t *testing.T) {
	p := scenarioA(t)

	start := mustSolution(t, p, []bool{true, true, false},
		cflp.GreedyAssign(p, []bool{true, true, false}))
	require.True(t, cflp.IsFeasible(p, start, 2))

	rng := rand.New(rand.NewSource(5))

	var sawDifferentOpening bool
	for trial := 0; trial < 10; trial++ {
		cand, err := cflp.FlipFacility(p, start, 2, cflp.DefaultFlipAttempts, rng)
		require.NoError(t, err)

		assert.True(t, cflp.IsFeasible(p, cand, 2))
		assert.LessOrEqual(t, cand.OpenCount(), 2)
		if !equalOpen(start.Open(), cand.Open()) {
			sawDifferentOpening = true
		}
	}
	assert.True(t, sawDifferentOpening, "neighborhood must reach other openings")
}

// TestFlipFacility_NoFeasibleNeighbor: with one facility every flip closes
// the only open site, so the bounded retry surfaces the typed outcome.
func TestFlipFacility_NoFeasibleNeighbor(t *testing.T) {
	p, err := cflp.NewProblem(
		[]float64{1},
		[][]float64{{1}},
		[]int{10},
		[]int{5},
	)
	require.NoError(t, err)

	s := mustSolution(t, p, []bool{true}, [][]int{{5}})

	_, err = cflp.FlipFacility(p, s, 1, 16, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, cflp.ErrNoFeasibleNeighbor)
}

func TestFlipFacility_Validation(t *testing.T) {
	p := scenarioA(t)
	s := mustSolution(t, p, []bool{true, true, true}, cflp.GreedyAssign(p, []bool{true, true, true}))

	_, err := cflp.FlipFacility(nil, s, 2, 8, nil)
	assert.ErrorIs(t, err, cflp.ErrNilProblem)

	_, err = cflp.FlipFacility(p, nil, 2, 8, nil)
	assert.ErrorIs(t, err, cflp.ErrNilSolution)

	_, err = cflp.FlipFacility(p, s, 2, 0, nil)
	assert.ErrorIs(t, err, cflp.ErrBadFlipAttempts)
}

// equalOpen compares two open vectors elementwise.
func equalOpen(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
