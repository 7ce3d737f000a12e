// Package inspect compiles exercise circuits and renders the resulting
// constraint system so students can see what their Define produced.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Field is the scalar field every exercise compiles over.
func Field() *big.Int { return ecc.BN254.ScalarField() }

// Compile builds the R1CS for a circuit over the exercise field.
func Compile(circuit frontend.Circuit) (constraint.ConstraintSystem, error) {
	return frontend.Compile(Field(), r1cs.NewBuilder, circuit)
}

// Summary describes the size of a compiled constraint system.
type Summary struct {
	Constraints int
	Public      int
	Secret      int
	Internal    int
}

// Summarize extracts size counters from a compiled constraint system.
// The public count includes the constant one-wire gnark prepends.
func Summarize(ccs constraint.ConstraintSystem) Summary {
	return Summary{
		Constraints: ccs.GetNbConstraints(),
		Public:      ccs.GetNbPublicVariables(),
		Secret:      ccs.GetNbSecretVariables(),
		Internal:    ccs.GetNbInternalVariables(),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d constraints, %d public, %d secret, %d internal",
		s.Constraints, s.Public, s.Secret, s.Internal)
}

// Dump writes one line per rank-1 constraint in "L ⋅ R == O" form.
// It fails for non-R1CS systems.
func Dump(w io.Writer, ccs constraint.ConstraintSystem) error {
	system, ok := ccs.(interface {
		GetR1Cs() []constraint.R1C
	})
	if !ok {
		return errors.New("constraint system is not an R1CS")
	}
	for i, c := range system.GetR1Cs() {
		if _, err := fmt.Fprintf(w, "c%d: %s\n", i, c.String(ccs)); err != nil {
			return err
		}
	}
	return nil
}
