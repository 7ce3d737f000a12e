package iszero1

import (
	"testing"

	"github.com/zklings/zklings/internal/training"
)

func TestIsZero1(t *testing.T) {
	training.Check(t, &Circuit{},
		training.Valid(&Circuit{X: 0, Flag: 1}),
		training.Valid(&Circuit{X: 17, Flag: 0}),
		training.Invalid(&Circuit{X: 17, Flag: 1}),
		training.Invalid(&Circuit{X: 0, Flag: 0}),
	)
}
