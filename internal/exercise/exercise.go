// Package exercise defines the curriculum manifest, the per-exercise
// metadata and the student's progress state.
package exercise

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind tells the runner how to check an exercise.
type Kind string

const (
	// KindCircuit is a gnark circuit package under exercises/.
	KindCircuit Kind = "circuit"
	// KindQuiz is a markdown question with a fenced answer block.
	KindQuiz Kind = "quiz"
)

// PendingMarker flags a circuit exercise the student has not finished yet.
// The runner refuses to mark an exercise done while the marker is present.
const PendingMarker = "// I AM NOT DONE"

// Exercise is one entry of the curriculum manifest.
type Exercise struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
	Kind Kind   `yaml:"kind"`
	// File is the markdown file name for quiz exercises.
	File string `yaml:"file,omitempty"`
	Hint string `yaml:"hint"`
}

// Path returns the exercise location relative to the repository root:
// the package directory for circuits, the markdown file for quizzes.
func (e *Exercise) Path() string {
	if e.Kind == KindQuiz {
		return filepath.Join("exercises", e.Dir, e.File)
	}
	return filepath.Join("exercises", e.Dir)
}

// SolutionPath returns the location of the solution mirror.
// Quiz exercises have no solution mirror.
func (e *Exercise) SolutionPath() string {
	return filepath.Join("solutions", e.Dir)
}

// ImportDir returns the go package path argument passed to `go test`.
func (e *Exercise) ImportDir(solution bool) string {
	if solution {
		return "./" + filepath.ToSlash(e.SolutionPath())
	}
	return "./" + filepath.ToSlash(e.Path())
}

func (e *Exercise) String() string { return e.Path() }

// Pending reports whether the exercise still carries the pending marker.
// For circuit exercises every .go file of the package is scanned; quiz
// exercises are never pending.
func (e *Exercise) Pending(root string) (bool, error) {
	if e.Kind == KindQuiz {
		return false, nil
	}
	dir := filepath.Join(root, e.Path())
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read exercise dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return false, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if strings.Contains(string(data), PendingMarker) {
			return true, nil
		}
	}
	return false, nil
}

func (e *Exercise) validate(root string) error {
	if e.Name == "" {
		return fmt.Errorf("exercise with empty name")
	}
	switch e.Kind {
	case KindCircuit:
		if e.File != "" {
			return fmt.Errorf("exercise %s: circuit exercises must not set file", e.Name)
		}
	case KindQuiz:
		if e.File == "" {
			return fmt.Errorf("exercise %s: quiz exercises must set file", e.Name)
		}
	default:
		return fmt.Errorf("exercise %s: unknown kind %q", e.Name, e.Kind)
	}
	if _, err := os.Stat(filepath.Join(root, e.Path())); err != nil {
		return fmt.Errorf("exercise %s: %s: %w", e.Name, e.Path(), err)
	}
	return nil
}
