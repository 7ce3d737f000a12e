// Package stats reports curriculum progress and reference circuit sizes.
// Reference (solution) circuits are compiled in-process; results are
// cached on disk keyed by tool version.
package stats

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/inspect"
	"github.com/zklings/zklings/solutions"
)

// Metric is one exercise row of the stats report.
type Metric struct {
	Name  string
	Topic string
	Done  bool
	Size  inspect.Summary
}

// Collect compiles every registered reference circuit (or reuses the
// cache) and joins the result with the student's progress.
func Collect(m *exercise.Manifest, st *exercise.State, log zerolog.Logger) ([]Metric, error) {
	cache, err := loadCache(m.Root())
	if err != nil {
		log.Warn().Err(err).Msg("metrics cache unreadable, recompiling")
		cache = newCache()
	}

	var metrics []Metric
	dirty := false
	for i := range m.Exercises {
		ex := &m.Exercises[i]
		if ex.Kind != exercise.KindCircuit {
			continue
		}
		entry, ok := solutions.Lookup(ex.Name)
		if !ok {
			log.Warn().Str("exercise", ex.Name).Msg("no reference circuit registered")
			continue
		}

		size, ok := cache.Metrics[ex.Name]
		if !ok {
			ccs, err := inspect.Compile(entry.New())
			if err != nil {
				return nil, fmt.Errorf("compile reference circuit %s: %w", ex.Name, err)
			}
			size = inspect.Summarize(ccs)
			cache.Metrics[ex.Name] = size
			dirty = true
		}

		metrics = append(metrics, Metric{
			Name:  ex.Name,
			Topic: topic(ex.Dir),
			Done:  st.IsDone(ex.Name),
			Size:  size,
		})
	}

	if dirty {
		if err := saveCache(m.Root(), cache); err != nil {
			log.Warn().Err(err).Msg("could not write metrics cache")
		}
	}
	return metrics, nil
}

// topic strips the exercise leaf from its dir, e.g.
// "01_multiplication/mul1" -> "01_multiplication".
func topic(dir string) string {
	parent := filepath.Dir(dir)
	if parent == "." {
		return dir
	}
	return strings.Split(filepath.ToSlash(parent), "/")[0]
}
