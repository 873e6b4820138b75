// Package cflp_test - bootstrap solution generator.
package cflp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflp"
)

func TestInitialSolution_OpensAllWithoutBindingCap(t *testing.T) {
	p := scenarioA(t)

	s, err := cflp.InitialSolution(p, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, 3, s.OpenCount(), "k == m opens every facility")
	assert.True(t, cflp.IsFeasible(p, s, 3))
}

func TestInitialSolution_RespectsBindingCap(t *testing.T) {
	p := scenarioA(t)

	// Several seeds; the sampled opening must always respect the cap and
	// still cover demand.
	for _, seed := range []int64{1, 2, 3, 11, 99} {
		s, err := cflp.InitialSolution(p, 2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		assert.LessOrEqual(t, s.OpenCount(), 2)
		assert.GreaterOrEqual(t, s.OpenCount(), 1)
		assert.True(t, cflp.IsFeasible(p, s, 2), "bootstrap must be feasible (seed %d)", seed)
	}
}

// TestInitialSolution_BalancesByRemainingCapacity: a single client's demand
// lands on the open facility with the largest remaining capacity, not the
// cheapest one.
func TestInitialSolution_BalancesByRemainingCapacity(t *testing.T) {
	// Facility 1 is far cheaper but smaller; the bootstrap must still pick
	// facility 0 (largest remaining capacity).
	p, err := cflp.NewProblem(
		[]float64{1, 1},
		[][]float64{{9, 1}},
		[]int{100, 50},
		[]int{10},
	)
	require.NoError(t, err)

	s, err := cflp.InitialSolution(p, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 10, s.Assigned(0, 0))
	assert.Zero(t, s.Assigned(1, 0))
}

// TestInitialSolution_NoFeasibleOpening: the cap admits no opening whose
// capacity covers demand, which is a typed failure, not a loop.
func TestInitialSolution_NoFeasibleOpening(t *testing.T) {
	p, err := cflp.NewProblem(
		[]float64{1, 1, 1},
		[][]float64{{1, 1, 1}, {1, 1, 1}},
		[]int{5, 5, 5},
		[]int{6, 6}, // total 12 > best 2-opening capacity 10
	)
	require.NoError(t, err)

	_, err = cflp.InitialSolution(p, 2, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, cflp.ErrNoFeasibleOpening)
}

func TestInitialSolution_Validation(t *testing.T) {
	p := scenarioA(t)

	_, err := cflp.InitialSolution(nil, 1, nil)
	assert.ErrorIs(t, err, cflp.ErrNilProblem)

	_, err = cflp.InitialSolution(p, 0, nil)
	assert.ErrorIs(t, err, cflp.ErrFacilityCapRange)

	_, err = cflp.InitialSolution(p, 4, nil)
	assert.ErrorIs(t, err, cflp.ErrFacilityCapRange)
}
