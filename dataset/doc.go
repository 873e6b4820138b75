// Package dataset loads, saves and synthesizes CFLP problem instances.
//
// The solver core consumes plain numeric arrays; this package is the
// persistence and data-generation collaborator around it:
//
//   - Instance - the on-disk YAML shape of a problem (plus an optional
//     recommended open-facility cap). Load/Save round-trip it; Problem()
//     converts to a validated cflp.Problem.
//   - Generate - deterministic random instances: dimension-consistent,
//     capacity always covering demand, reproducible from a seed.
//
// The package never prints and never mutates a loaded instance; malformed
// files surface as wrapped sentinel errors.
package dataset
