// Solution for signals1.

package signals1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	In  frontend.Variable
	Out frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.Out, api.Add(c.In, 1))
	return nil
}
