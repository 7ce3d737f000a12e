// Solution for mimc1.

package mimc1

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

type Circuit struct {
	Pre  frontend.Variable
	Hash frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.Pre)
	api.AssertIsEqual(c.Hash, h.Sum())
	return nil
}
