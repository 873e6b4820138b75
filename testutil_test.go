// Package cflp_test - shared fixtures for the solver test suite.
package cflp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cflp"
)

// scenarioA is the 3-facility / 5-client instance with a binding cap k=2.
// Its best attainable cost under k=2 is 5610 (opening facilities 1 and 2);
// the end-to-end tests only assert the looser published bound.
func scenarioA(t *testing.T) *cflp.Problem {
	t.Helper()

	p, err := cflp.NewProblem(
		[]float64{1000, 1000, 1000},
		[][]float64{
			{4, 6, 9},
			{5, 4, 7},
			{6, 3, 4},
			{8, 5, 3},
			{10, 8, 4},
		},
		[]int{500, 500, 500},
		[]int{80, 270, 250, 160, 180},
	)
	require.NoError(t, err, "scenario A instance must construct")

	return p
}

// tinyProblem is a 2x2 instance for feasibility and move tests.
func tinyProblem(t *testing.T) *cflp.Problem {
	t.Helper()

	p, err := cflp.NewProblem(
		[]float64{1, 1},
		[][]float64{
			{1, 2},
			{2, 1},
		},
		[]int{10, 10},
		[]int{5, 5},
	)
	require.NoError(t, err)

	return p
}

// mustSolution wraps NewSolution for fixtures that are shape-correct by
// construction.
func mustSolution(t *testing.T, p *cflp.Problem, open []bool, assign [][]int) *cflp.Solution {
	t.Helper()

	s, err := cflp.NewSolution(p, open, assign)
	require.NoError(t, err)

	return s
}

// assignMatrix allocates an all-zero m x n matrix for handcrafted fixtures.
func assignMatrix(m, n int) [][]int {
	out := make([][]int, m)
	for j := range out {
		out[j] = make([]int, n)
	}

	return out
}

// recomputeCost mirrors the documented objective summation order: fixed
// costs of open facilities first, then clients outer / facilities inner.
// Tests use it to assert exact cache coherence.
func recomputeCost(p *cflp.Problem, open []bool, assign [][]int) float64 {
	var total float64
	for j := 0; j < p.Facilities(); j++ {
		if open[j] {
			total += p.FixedCost(j)
		}
	}
	for i := 0; i < p.Clients(); i++ {
		for j := 0; j < p.Facilities(); j++ {
			if assign[j][i] != 0 {
				total += p.VarCost(i, j) * float64(assign[j][i])
			}
		}
	}

	return total
}

// coverageExact reports whether the assignment meets every client's demand
// exactly and respects every facility capacity.
func coverageExact(p *cflp.Problem, assign [][]int) bool {
	for i := 0; i < p.Clients(); i++ {
		sum := 0
		for j := 0; j < p.Facilities(); j++ {
			sum += assign[j][i]
		}
		if sum != p.Demand(i) {
			return false
		}
	}
	for j := 0; j < p.Facilities(); j++ {
		load := 0
		for i := 0; i < p.Clients(); i++ {
			load += assign[j][i]
		}
		if load > p.Capacity(j) {
			return false
		}
	}

	return true
}
