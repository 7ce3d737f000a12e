package poly1

import (
	"testing"

	"github.com/zklings/zklings/internal/training"
)

func TestPoly1Solution(t *testing.T) {
	training.Check(t, &Circuit{},
		training.Valid(&Circuit{X: 3, Y: 35}),
		training.Valid(&Circuit{X: 0, Y: 5}),
		training.Invalid(&Circuit{X: 3, Y: 36}),
	)
}
