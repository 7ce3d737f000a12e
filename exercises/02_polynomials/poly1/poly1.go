// poly1: longer arithmetic is a chain of multiplications and additions.
// Prove knowledge of x such that x^3 + x + 5 == y, with only y public.
//
// I AM NOT DONE

package poly1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	// TODO: build x^3 with api.Mul (it is variadic), then bind Y.
	_ = api
	return nil
}
