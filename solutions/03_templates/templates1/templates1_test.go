package templates1

import (
	"testing"

	"github.com/zklings/zklings/internal/training"
)

func TestTemplates1Solution(t *testing.T) {
	training.Check(t, &Circuit{},
		training.Valid(&Circuit{A: 2, B: 3, C: 4, D: 24}),
		training.Valid(&Circuit{A: 1, B: 1, C: 1, D: 1}),
		training.Invalid(&Circuit{A: 2, B: 3, C: 4, D: 25}),
	)
}
