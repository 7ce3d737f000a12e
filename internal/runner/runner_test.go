package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/training"
)

func TestTestCmd(t *testing.T) {
	r := New("/tmp/curriculum", zerolog.Nop())
	ex := &exercise.Exercise{Name: "mul1", Dir: "01_multiplication/mul1", Kind: exercise.KindCircuit}

	cmd := r.testCmd(context.Background(), ex, false)
	require.Equal(t, []string{"go", "test", "-count=1", "./exercises/01_multiplication/mul1"}, cmd.Args)
	require.Equal(t, "/tmp/curriculum", cmd.Dir)

	found := false
	for _, kv := range cmd.Env {
		if kv == training.RunEnv+"=1" {
			found = true
		}
	}
	require.True(t, found, "runner must set %s", training.RunEnv)

	sol := r.testCmd(context.Background(), ex, true)
	require.Equal(t, "./solutions/01_multiplication/mul1", sol.Args[len(sol.Args)-1])
}

func TestRunQuiz(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "exercises", "08_quiz")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	md := "# What does AssertIsEqual emit?\n\nAnswer with the constraint count.\n\n```\n1\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quiz1.md"), []byte(md), 0o644))

	ex := &exercise.Exercise{Name: "quiz1", Dir: "08_quiz", File: "quiz1.md", Kind: exercise.KindQuiz}

	var out bytes.Buffer
	r := New(root, zerolog.Nop())
	r.Stdin = strings.NewReader("1\n")
	r.Stdout = &out

	report, err := r.Run(context.Background(), ex)
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Contains(t, out.String(), "What does AssertIsEqual emit?")
	require.Contains(t, string(report.Output), "Correct!")

	// wrong answer
	r.Stdin = strings.NewReader("7\n")
	report, err = r.Run(context.Background(), ex)
	require.NoError(t, err)
	require.False(t, report.Success)
	require.Contains(t, string(report.Output), "Incorrect")
}

func TestRunSolutionRejectsQuiz(t *testing.T) {
	r := New(t.TempDir(), zerolog.Nop())
	ex := &exercise.Exercise{Name: "quiz1", Dir: "08_quiz", File: "quiz1.md", Kind: exercise.KindQuiz}
	_, err := r.RunSolution(context.Background(), ex)
	require.Error(t, err)
}
