package bool1

import (
	"testing"

	"github.com/zklings/zklings/internal/training"
)

func TestBool1Solution(t *testing.T) {
	training.Check(t, &Circuit{},
		training.Valid(&Circuit{A: 0, B: 0, Out: 0}),
		training.Valid(&Circuit{A: 1, B: 0, Out: 1}),
		training.Valid(&Circuit{A: 0, B: 1, Out: 1}),
		training.Valid(&Circuit{A: 1, B: 1, Out: 0}),
		training.Invalid(&Circuit{A: 1, B: 1, Out: 1}),
		training.Invalid(&Circuit{A: 2, B: 0, Out: 2}),
	)
}
