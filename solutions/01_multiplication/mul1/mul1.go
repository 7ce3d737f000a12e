// Solution for mul1.

package mul1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	A frontend.Variable
	B frontend.Variable
	C frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.C, api.Add(api.Mul(c.A, c.B), 7))
	return nil
}
