// Solution for templates1.

package templates1

import "github.com/consensys/gnark/frontend"

// Multiplier is a two-input template: it returns a signal constrained
// to the product of its inputs.
func Multiplier(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return api.Mul(a, b)
}

type Circuit struct {
	A frontend.Variable
	B frontend.Variable
	C frontend.Variable
	D frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	ab := Multiplier(api, c.A, c.B)
	api.AssertIsEqual(c.D, Multiplier(api, ab, c.C))
	return nil
}
