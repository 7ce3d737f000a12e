// Solution for poly1.

package poly1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	x3 := api.Mul(c.X, c.X, c.X)
	api.AssertIsEqual(c.Y, api.Add(x3, c.X, 5))
	return nil
}
