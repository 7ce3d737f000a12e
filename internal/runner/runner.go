// Package runner checks exercises: circuit exercises through the go
// toolchain (the external compiler boundary), quizzes interactively.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/quiz"
	"github.com/zklings/zklings/internal/render"
	"github.com/zklings/zklings/internal/training"
)

// OutputCapacity is the initial size of the capture buffer.
const OutputCapacity = 1 << 14

// Report is the outcome of one exercise run.
type Report struct {
	Exercise *exercise.Exercise
	Success  bool
	// Pending is set when the tests pass but the pending marker is
	// still in place, so the exercise does not count as done yet.
	Pending  bool
	Output   []byte
	Duration time.Duration
}

// Runner executes exercises from a curriculum root.
type Runner struct {
	root string
	log  zerolog.Logger

	// GoBin is the go tool used for circuit exercises.
	GoBin string
	// Stdin / Stdout drive quiz interaction.
	Stdin  io.Reader
	Stdout io.Writer
}

func New(root string, log zerolog.Logger) *Runner {
	return &Runner{
		root:   root,
		log:    log,
		GoBin:  "go",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Run checks the exercise as the student wrote it.
func (r *Runner) Run(ctx context.Context, ex *exercise.Exercise) (*Report, error) {
	switch ex.Kind {
	case exercise.KindCircuit:
		return r.runCircuit(ctx, ex, false)
	case exercise.KindQuiz:
		return r.runQuiz(ex)
	default:
		return nil, fmt.Errorf("exercise %s: unsupported kind %q", ex.Name, ex.Kind)
	}
}

// RunSolution checks the solution mirror of a circuit exercise.
func (r *Runner) RunSolution(ctx context.Context, ex *exercise.Exercise) (*Report, error) {
	if ex.Kind != exercise.KindCircuit {
		return nil, fmt.Errorf("exercise %s: quizzes have no solution to run", ex.Name)
	}
	return r.runCircuit(ctx, ex, true)
}

// testCmd builds the `go test` invocation for an exercise package.
func (r *Runner) testCmd(ctx context.Context, ex *exercise.Exercise, solution bool) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.GoBin, "test", "-count=1", ex.ImportDir(solution))
	cmd.Dir = r.root
	cmd.Env = append(os.Environ(), training.RunEnv+"=1")
	return cmd
}

func (r *Runner) runCircuit(ctx context.Context, ex *exercise.Exercise, solution bool) (*Report, error) {
	out := bytes.NewBuffer(make([]byte, 0, OutputCapacity))
	cmd := r.testCmd(ctx, ex, solution)
	cmd.Stdout = out
	cmd.Stderr = out

	r.log.Debug().Str("exercise", ex.Name).Strs("args", cmd.Args).Msg("running tests")

	start := time.Now()
	err := cmd.Run()
	report := &Report{
		Exercise: ex,
		Success:  err == nil,
		Output:   out.Bytes(),
		Duration: time.Since(start),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", ex.Name, err)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return report, nil
	}

	if !solution {
		pending, err := ex.Pending(r.root)
		if err != nil {
			return nil, err
		}
		if pending {
			report.Success = false
			report.Pending = true
			fmt.Fprintf(out, "\nThe tests pass. Remove the %q line to finish the exercise.\n", exercise.PendingMarker)
			report.Output = out.Bytes()
		}
	}
	return report, nil
}

func (r *Runner) runQuiz(ex *exercise.Exercise) (*Report, error) {
	out := bytes.NewBuffer(make([]byte, 0, OutputCapacity))
	data, err := os.ReadFile(filepath.Join(r.root, ex.Path()))
	if err != nil {
		return nil, fmt.Errorf("read quiz %s: %w", ex.Name, err)
	}
	q, err := quiz.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("quiz %s: %w", ex.Name, err)
	}

	start := time.Now()
	fmt.Fprint(r.Stdout, render.Markdown(q.Question, 80))
	ok, err := q.Ask(r.Stdin, io.MultiWriter(r.Stdout, out))
	if err != nil {
		return nil, fmt.Errorf("quiz %s: %w", ex.Name, err)
	}
	return &Report{
		Exercise: ex,
		Success:  ok,
		Output:   out.Bytes(),
		Duration: time.Since(start),
	}, nil
}
