// templates2: templates can be parameterized. This circuit takes
// NbInputs signals and must constrain Product to their product, built
// only from two-input multiplications.
//
// I AM NOT DONE

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
	// TODO: fold the inputs with two-input api.Mul calls and bind the
	// result to Product.
	api.AssertIsEqual(c.Product, c.Xs[0])
	return nil
}
