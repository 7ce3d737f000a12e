package templates2

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/zklings/zklings/internal/inspect"
	"github.com/zklings/zklings/internal/training"
)

func TestTemplates2Solution(t *testing.T) {
	training.Check(t, NewCircuit(),
		training.Valid(&Circuit{Xs: []frontend.Variable{2, 3, 4, 5}, Product: 120}),
		training.Valid(&Circuit{Xs: []frontend.Variable{1, 1, 1, 9}, Product: 9}),
		training.Invalid(&Circuit{Xs: []frontend.Variable{2, 3, 4, 5}, Product: 121}),
	)
}

func TestTemplates2ProductProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("any non-negative inputs satisfy the circuit with their product", prop.ForAll(
		func(xs []int64) bool {
			product := big.NewInt(1)
			assignment := &Circuit{Xs: make([]frontend.Variable, NbInputs)}
			for i, x := range xs {
				assignment.Xs[i] = x
				product.Mul(product, big.NewInt(x))
			}
			assignment.Product = product
			return test.IsSolved(NewCircuit(), assignment, inspect.Field()) == nil
		},
		gen.SliceOfN(NbInputs, gen.Int64Range(0, 1<<31)),
	))

	properties.TestingRun(t)
}
