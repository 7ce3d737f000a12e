package inspect

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/stretchr/testify/require"
)

// y == x*x*x + x + 5
type cubic struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *cubic) Define(api frontend.API) error {
	x3 := api.Mul(c.X, c.X, c.X)
	api.AssertIsEqual(c.Y, api.Add(x3, c.X, 5))
	return nil
}

func TestSummarize(t *testing.T) {
	ccs, err := Compile(&cubic{})
	require.NoError(t, err)

	s := Summarize(ccs)
	require.Equal(t, 3, s.Constraints)
	require.Equal(t, 1, s.Secret)
	// public counts the constant one-wire plus Y
	require.Equal(t, 2, s.Public)
}

func TestDump(t *testing.T) {
	ccs, err := Compile(&cubic{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ccs))

	out := buf.String()
	require.Contains(t, out, "c0:")
	require.Contains(t, out, "c2:")
	require.Contains(t, out, "==")
}
