package tui

import "github.com/zklings/zklings/internal/runner"

type runFinishedMsg struct{ report *runner.Report }

type fileSavedMsg struct{ path string }

type errMsg struct{ err error }
