// Package report renders solver results for human consumption.
//
// The core keeps exact integer assignments and 0-based indices; every
// display convention lives here instead: 1-based facility and client
// numbering, sparse assignment triples, and a plain-text summary. The
// package only formats - it never mutates a Result and never logs.
package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cflp"
)

// Triple is one non-zero assignment cell in core (0-based) indexing.
type Triple struct {
	Client   int
	Facility int
	Amount   int
}

// Triples extracts the sparse non-zero assignment cells in deterministic
// order (clients outer, facilities inner).
//
// Complexity: O(n*m).
func Triples(res cflp.Result) []Triple {
	var out []Triple

	m := len(res.Assignment)
	if m == 0 {
		return out
	}
	n := len(res.Assignment[0])

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if res.Assignment[j][i] != 0 {
				out = append(out, Triple{Client: i, Facility: j, Amount: res.Assignment[j][i]})
			}
		}
	}

	return out
}

// Format renders a multi-line summary. Indices are shifted to 1-based at
// this boundary only; the cost is printed with two decimals.
//
// Layout:
//
//	cost: 5610.00
//	feasible: true
//	open facilities: 2, 3
//	assignments:
//	  client 1 -> facility 2: 80
//	  ...
func Format(res cflp.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "cost: %.2f\n", res.Cost)
	fmt.Fprintf(&b, "feasible: %v\n", res.Feasible)

	b.WriteString("open facilities: ")
	open := res.OpenFacilities()
	for i, j := range open {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", j+1)
	}
	b.WriteString("\n")

	b.WriteString("assignments:\n")
	for _, tr := range Triples(res) {
		fmt.Fprintf(&b, "  client %d -> facility %d: %d\n", tr.Client+1, tr.Facility+1, tr.Amount)
	}

	return b.String()
}
