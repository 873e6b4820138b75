// Package cflp - solver configuration.
//
// Options follows the plain-struct + DefaultOptions + Validate pattern: the
// caller fills (or tweaks) a value, and every entry point validates it before
// doing any work. Validation returns strict sentinels from types.go.
package cflp

import "time"

// DefaultFlipAttempts bounds the retry loop of the facility-flip generator.
// The loop repairs infeasible flips by redrawing the flipped index; without a
// bound a saturated neighborhood would spin forever, so exhaustion surfaces
// as ErrNoFeasibleNeighbor instead.
const DefaultFlipAttempts = 128

// Schedule describes one geometric cooling schedule.
//
// The temperature starts at InitialTemp, is multiplied by Alpha after every
// Iterations proposals, and the loop stops once it reaches FinalTemp.
type Schedule struct {
	// InitialTemp is the starting temperature. Must be > FinalTemp.
	InitialTemp float64

	// FinalTemp is the termination temperature. Must be > 0.
	FinalTemp float64

	// Alpha is the geometric cooling factor, strictly inside (0,1).
	Alpha float64

	// Iterations is the number of proposals evaluated per temperature level.
	Iterations int
}

// Validate checks the schedule invariants.
//
// Complexity: O(1).
func (s Schedule) Validate() error {
	if s.FinalTemp <= 0 || s.InitialTemp <= s.FinalTemp {
		return ErrBadTemperature
	}
	if s.Alpha <= 0 || s.Alpha >= 1 {
		return ErrBadAlpha
	}
	if s.Iterations <= 0 {
		return ErrBadIterations
	}

	return nil
}

// Options configures the two-layer annealing solver.
//
// Fields:
//   - Seed         - deterministic RNG seed; 0 selects a fixed default stream,
//     so identical Options always reproduce identical runs.
//   - TimeLimit    - soft wall-clock budget; 0 means unlimited. The deadline
//     is honored cooperatively: it is checked at every cooling step, never
//     pre-emptively inside a proposal.
//   - FlipAttempts - retry budget of the facility-flip generator.
//   - Outer        - cooling schedule of the facility-decision search.
//   - Inner        - cooling schedule of the assignment-refinement search,
//     executed once per outer proposal.
type Options struct {
	Seed         int64
	TimeLimit    time.Duration
	FlipAttempts int
	Outer        Schedule
	Inner        Schedule
}

// DefaultOptions returns a configuration suitable for small and medium
// instances (m up to a few dozen facilities). The defaults favor a short,
// reproducible run; raise the schedules for harder instances.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		TimeLimit:    0,
		FlipAttempts: DefaultFlipAttempts,
		Outer: Schedule{
			InitialTemp: 500.0,
			FinalTemp:   1.0,
			Alpha:       0.85,
			Iterations:  20,
		},
		Inner: Schedule{
			InitialTemp: 50.0,
			FinalTemp:   0.5,
			Alpha:       0.80,
			Iterations:  25,
		},
	}
}

// Validate checks the full option set.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	if o.FlipAttempts <= 0 {
		return ErrBadFlipAttempts
	}
	if err := o.Outer.Validate(); err != nil {
		return err
	}
	if err := o.Inner.Validate(); err != nil {
		return err
	}

	return nil
}

// deadlineFrom converts a soft budget into an absolute deadline.
// A zero limit yields the zero time, meaning "no deadline".
func deadlineFrom(start time.Time, limit time.Duration) time.Time {
	if limit <= 0 {
		return time.Time{}
	}

	return start.Add(limit)
}

// expired reports whether the cooperative deadline has passed.
// The zero deadline never expires.
func expired(deadline time.Time) bool {
	if deadline.IsZero() {
		return false
	}

	return time.Now().After(deadline)
}
