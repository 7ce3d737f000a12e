package mimc1

import (
	"math/big"
	"testing"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	_ "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	gchash "github.com/consensys/gnark-crypto/hash"

	"github.com/zklings/zklings/internal/training"
)

// mimcSum hashes one field element with the native MiMC, the reference
// for the in-circuit gadget.
func mimcSum(t *testing.T, pre int64) *big.Int {
	t.Helper()
	var x fr.Element
	x.SetInt64(pre)
	b := x.Bytes()

	h := gchash.MIMC_BN254.New()
	if _, err := h.Write(b[:]); err != nil {
		t.Fatal(err)
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}

func TestMimc1(t *testing.T) {
	digest := mimcSum(t, 35)
	training.Check(t, &Circuit{},
		training.Valid(&Circuit{Pre: 35, Hash: digest}),
		training.Invalid(&Circuit{Pre: 36, Hash: digest}),
		training.Invalid(&Circuit{Pre: 35, Hash: 1}),
	)
}
