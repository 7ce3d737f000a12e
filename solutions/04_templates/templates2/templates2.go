// Solution for templates2.

package templates2

import "github.com/consensys/gnark/frontend"

// NbInputs parameterizes the circuit. Changing it changes the compiled
// constraint count, not the Go code.
const NbInputs = 4

type Circuit struct {
	Xs      []frontend.Variable
	Product frontend.Variable `gnark:",public"`
}

// NewCircuit allocates the input slice; gnark derives one secret signal
// per element.
func NewCircuit() *Circuit {
	return &Circuit{Xs: make([]frontend.Variable, NbInputs)}
}

func (c *Circuit) Define(api frontend.API) error {
	acc := c.Xs[0]
	for _, x := range c.Xs[1:] {
		acc = api.Mul(acc, x)
	}
	api.AssertIsEqual(c.Product, acc)
	return nil
}
