// Package cmd wires the zklings command line interface.
package cmd

import (
	"fmt"
	"os"

	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zklings/zklings/internal/buildinfo"
	"github.com/zklings/zklings/internal/exercise"
)

var (
	verbose bool

	log      zerolog.Logger
	manifest *exercise.Manifest
	state    *exercise.State
)

var rootCmd = &cobra.Command{
	Use:   "zklings",
	Short: "Small exercises to get you writing zero-knowledge circuits in Go",
	Long: `zklings walks you through writing arithmetic circuits with gnark,
one small exercise at a time. Each exercise is a circuit with a hole in
it; fix the circuit, save, and zklings checks your work.

Run without arguments to start watch mode.`,
	Version:       buildinfo.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		log = zerolog.New(out).Level(level).With().Timestamp().Logger()
		gnarklogger.Set(log)

		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root, err := exercise.FindRoot(wd)
		if err != nil {
			return err
		}
		manifest, err = exercise.Load(root)
		if err != nil {
			return err
		}
		state, err = exercise.LoadState(manifest)
		if err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(watchCmd, runCmd, verifyCmd, hintCmd, listCmd, resetCmd, inspectCmd, statsCmd)
}

// Execute runs the command line interface.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// currentOrNamed resolves an optional exercise name argument, falling
// back to the first pending exercise.
func currentOrNamed(args []string) (*exercise.Exercise, error) {
	if len(args) > 0 {
		return manifest.Get(args[0])
	}
	ex := state.Next(manifest)
	if ex == nil {
		return nil, fmt.Errorf("all exercises are done, nothing to pick")
	}
	return ex, nil
}
