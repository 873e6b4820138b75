// Package dataset - deterministic random instance synthesis.
//
// Generate follows the usual random-builder shape: an explicit config, an
// explicit seed, and a post-pass that enforces the structural invariant
// (aggregate capacity covers aggregate demand) so every generated instance
// passes cflp.NewProblem by construction.
package dataset

import (
	"errors"
	"math/rand"
)

// ErrBadGenConfig indicates non-positive dimensions or cost/size bounds.
var ErrBadGenConfig = errors.New("dataset: generator config out of range")

// GenConfig bounds the sampled instance. All maxima are inclusive-exclusive
// upper bounds on top of a fixed floor of 1 (costs draw from [0, max)).
type GenConfig struct {
	// Facilities (m) and Clients (n) set the instance dimensions.
	Facilities int
	Clients    int

	// MaxFixedCost bounds per-facility opening costs.
	MaxFixedCost float64

	// MaxVarCost bounds per-unit service costs.
	MaxVarCost float64

	// MaxCapacity and MaxDemand bound the integer sizes (floor 1).
	MaxCapacity int
	MaxDemand   int

	// Seed drives the deterministic sampler; equal configs produce equal
	// instances.
	Seed int64
}

// DefaultGenConfig returns a medium-sized, solver-friendly configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Facilities:   8,
		Clients:      30,
		MaxFixedCost: 500,
		MaxVarCost:   20,
		MaxCapacity:  300,
		MaxDemand:    40,
		Seed:         1,
	}
}

// Validate checks the dimension and bound invariants.
func (c GenConfig) Validate() error {
	if c.Facilities <= 0 || c.Clients <= 0 {
		return ErrBadGenConfig
	}
	if c.MaxFixedCost <= 0 || c.MaxVarCost <= 0 {
		return ErrBadGenConfig
	}
	if c.MaxCapacity <= 1 || c.MaxDemand <= 1 {
		return ErrBadGenConfig
	}

	return nil
}

// Generate samples a dimension-consistent instance. Capacities are inflated
// after sampling, round-robin, until they cover total demand, so the result
// always satisfies the aggregate-capacity invariant of cflp.NewProblem.
//
// Complexity: O(n*m).
func Generate(cfg GenConfig) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	in := &Instance{
		FixedCost:    make([]float64, cfg.Facilities),
		VariableCost: make([][]float64, cfg.Clients),
		Capacity:     make([]int, cfg.Facilities),
		Demand:       make([]int, cfg.Clients),
	}

	var (
		j, i          int
		totalCapacity int
		totalDemand   int
	)
	for j = 0; j < cfg.Facilities; j++ {
		in.FixedCost[j] = rng.Float64() * cfg.MaxFixedCost
		in.Capacity[j] = 1 + rng.Intn(cfg.MaxCapacity-1)
		totalCapacity += in.Capacity[j]
	}
	for i = 0; i < cfg.Clients; i++ {
		in.VariableCost[i] = make([]float64, cfg.Facilities)
		for j = 0; j < cfg.Facilities; j++ {
			in.VariableCost[i][j] = rng.Float64() * cfg.MaxVarCost
		}
		in.Demand[i] = 1 + rng.Intn(cfg.MaxDemand-1)
		totalDemand += in.Demand[i]
	}

	// Inflate capacities round-robin until demand fits.
	for j = 0; totalCapacity < totalDemand; j = (j + 1) % cfg.Facilities {
		in.Capacity[j]++
		totalCapacity++
	}

	return in, nil
}
