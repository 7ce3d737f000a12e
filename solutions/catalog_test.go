package solutions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zklings/zklings/internal/inspect"
)

// Every registered reference circuit must compile and carry at least
// one constraint.
func TestRegistryCompiles(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			entry, ok := Lookup(name)
			require.True(t, ok)

			ccs, err := inspect.Compile(entry.New())
			require.NoError(t, err)
			require.Greater(t, inspect.Summarize(ccs).Constraints, 0)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("nope")
	require.False(t, ok)
}
