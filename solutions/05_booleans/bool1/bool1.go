// Solution for bool1.

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
	// a XOR b == a + b - 2ab
	xor := api.Sub(api.Add(c.A, c.B), api.Mul(2, c.A, c.B))
	api.AssertIsEqual(c.Out, xor)
	return nil
}
