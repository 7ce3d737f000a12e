package signals1

import (
	"testing"

	"github.com/zklings/zklings/internal/training"
)

func TestSignals1(t *testing.T) {
	training.Check(t, &Circuit{},
		training.Valid(&Circuit{In: 1, Out: 2}),
		training.Valid(&Circuit{In: 41, Out: 42}),
		training.Invalid(&Circuit{In: 1, Out: 3}),
	)
}
