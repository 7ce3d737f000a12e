// Solution for iszero1.

package iszero1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	X    frontend.Variable
	Flag frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.Flag, api.IsZero(c.X))
	return nil
}
