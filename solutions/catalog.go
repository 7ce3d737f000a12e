// Package solutions registers the reference circuits so the tool can
// compile them in-process for inspection and stats.
package solutions

import (
	"sort"

	"github.com/consensys/gnark/frontend"

	signals1 "github.com/zklings/zklings/solutions/00_signals/signals1"
	mul1 "github.com/zklings/zklings/solutions/01_multiplication/mul1"
	poly1 "github.com/zklings/zklings/solutions/02_polynomials/poly1"
	templates1 "github.com/zklings/zklings/solutions/03_templates/templates1"
	templates2 "github.com/zklings/zklings/solutions/04_templates/templates2"
	bool1 "github.com/zklings/zklings/solutions/05_booleans/bool1"
	iszero1 "github.com/zklings/zklings/solutions/06_comparators/iszero1"
	mimc1 "github.com/zklings/zklings/solutions/07_hashes/mimc1"
)

// Entry is the reference circuit for one exercise.
type Entry struct {
	// New returns a fresh, unassigned circuit ready for compilation.
	New func() frontend.Circuit
}

var registry = map[string]Entry{
	"signals1":   {New: func() frontend.Circuit { return &signals1.Circuit{} }},
	"mul1":       {New: func() frontend.Circuit { return &mul1.Circuit{} }},
	"poly1":      {New: func() frontend.Circuit { return &poly1.Circuit{} }},
	"templates1": {New: func() frontend.Circuit { return &templates1.Circuit{} }},
	"templates2": {New: func() frontend.Circuit { return templates2.NewCircuit() }},
	"bool1":      {New: func() frontend.Circuit { return &bool1.Circuit{} }},
	"iszero1":    {New: func() frontend.Circuit { return &iszero1.Circuit{} }},
	"mimc1":      {New: func() frontend.Circuit { return &mimc1.Circuit{} }},
}

// Lookup returns the reference circuit registered for an exercise.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Names returns the registered exercise names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
