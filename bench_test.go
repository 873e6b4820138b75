// Package cflp_test - benchmarks for the solver hot paths.
package cflp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cflp"
)

// benchProblem builds a deterministic 10x40 instance without testing.T.
func benchProblem(b *testing.B) *cflp.Problem {
	b.Helper()

	const (
		m = 10
		n = 40
	)
	rng := rand.New(rand.NewSource(17))

	fixed := make([]float64, m)
	capacity := make([]int, m)
	for j := 0; j < m; j++ {
		fixed[j] = 50 + float64(rng.Intn(100))
		capacity[j] = 200 + rng.Intn(200)
	}

	demand := make([]int, n)
	varCost := make([][]float64, n)
	for i := 0; i < n; i++ {
		demand[i] = 10 + rng.Intn(30)
		varCost[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			varCost[i][j] = 1 + 9*rng.Float64()
		}
	}

	p, err := cflp.NewProblem(fixed, varCost, capacity, demand)
	if err != nil {
		b.Fatalf("bench instance: %v", err)
	}

	return p
}

func BenchmarkGreedyAssign(b *testing.B) {
	p := benchProblem(b)
	open := make([]bool, p.Facilities())
	for j := range open {
		open[j] = true
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cflp.GreedyAssign(p, open)
	}
}

func BenchmarkTransferDemand(b *testing.B) {
	p := benchProblem(b)
	open := make([]bool, p.Facilities())
	for j := range open {
		open[j] = true
	}
	s, err := cflp.NewSolution(p, open, cflp.GreedyAssign(p, open))
	if err != nil {
		b.Fatalf("bench solution: %v", err)
	}
	rng := rand.New(rand.NewSource(23))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cflp.TransferDemand(p, s, rng)
	}
}

func BenchmarkSolve_Small(b *testing.B) {
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
	if err != nil {
		b.Fatalf("bench instance: %v", err)
	}

	opts := cflp.DefaultOptions()
	opts.Outer = cflp.Schedule{InitialTemp: 100, FinalTemp: 1, Alpha: 0.8, Iterations: 10}
	opts.Inner = cflp.Schedule{InitialTemp: 10, FinalTemp: 1, Alpha: 0.7, Iterations: 10}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cflp.Solve(p, 2, opts); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}
