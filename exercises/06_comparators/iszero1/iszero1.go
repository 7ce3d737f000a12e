// iszero1: circuits have no branches. Predicates are signals: IsZero
// returns 1 when its argument is 0 and 0 otherwise, and the result can
// feed further constraints.
//
// Constrain Flag to be 1 exactly when X is zero.
//
// I AM NOT DONE

package iszero1

import "github.com/consensys/gnark/frontend"

type Circuit struct {
	X    frontend.Variable
	Flag frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	// TODO: bind Flag to api.IsZero(c.X).
	_ = api
	return nil
}
