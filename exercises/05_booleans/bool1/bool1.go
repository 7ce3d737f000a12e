// bool1: there is no boolean type in a circuit, only field elements
// constrained to 0 or 1. XOR becomes arithmetic: a + b - 2ab.
//
// Constrain Out to be A XOR B.
//
// I AM NOT DONE

package bool1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	A   frontend.Variable
	B   frontend.Variable
	Out frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	api.AssertIsBoolean(c.A)
	api.AssertIsBoolean(c.B)
	// TODO: bind Out to A + B - 2*A*B.
	return nil
}
