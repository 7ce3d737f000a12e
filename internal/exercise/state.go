package exercise

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// StateDir and StateFile locate the progress file under the repo root.
const (
	StateDir  = ".zklings"
	StateFile = "state.yaml"
)

// State tracks which exercises the student has completed.
type State struct {
	Current string   `yaml:"current"`
	Done    []string `yaml:"done"`

	done map[string]bool
}

// LoadState reads the progress file, returning a fresh state when none
// exists. Entries that no longer appear in the manifest are pruned.
func LoadState(m *Manifest) (*State, error) {
	s := &State{done: make(map[string]bool)}
	data, err := os.ReadFile(filepath.Join(m.root, StateDir, StateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	for _, name := range s.Done {
		if _, ok := m.byName[name]; ok {
			s.done[name] = true
		}
	}
	if _, ok := m.byName[s.Current]; !ok {
		s.Current = ""
	}
	s.rebuild()
	return s, nil
}

func (s *State) rebuild() {
	s.Done = s.Done[:0]
	for name := range s.done {
		s.Done = append(s.Done, name)
	}
	sort.Strings(s.Done)
}

// Save writes the progress file, creating the state dir if needed.
// A missing or completed current exercise is replaced by the next
// pending one, so the file always names where the student left off.
func (s *State) Save(m *Manifest) error {
	if s.Current == "" || s.done[s.Current] {
		s.Current = ""
		if next := s.Next(m); next != nil {
			s.Current = next.Name
		}
	}
	dir := filepath.Join(m.root, StateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, StateFile), data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// IsDone reports whether the named exercise has been completed.
func (s *State) IsDone(name string) bool { return s.done[name] }

// MarkDone records a completed exercise.
func (s *State) MarkDone(name string) {
	s.done[name] = true
	s.rebuild()
}

// MarkPending clears the done flag, used by reset.
func (s *State) MarkPending(name string) {
	delete(s.done, name)
	s.rebuild()
}

// SetCurrent records the exercise the student is working on, so a skip
// survives a restart.
func (s *State) SetCurrent(name string) { s.Current = name }

// Resume returns the exercise the student was last working on, falling
// back to the first pending one when nothing was recorded.
func (s *State) Resume(m *Manifest) *Exercise {
	if s.Current != "" && !s.done[s.Current] {
		if i, ok := m.byName[s.Current]; ok {
			return &m.Exercises[i]
		}
	}
	return s.Next(m)
}

// Next returns the first exercise in curriculum order that is not done,
// or nil when everything is completed.
func (s *State) Next(m *Manifest) *Exercise {
	for i := range m.Exercises {
		if !s.done[m.Exercises[i].Name] {
			return &m.Exercises[i]
		}
	}
	return nil
}

// NbDone returns the number of completed exercises.
func (s *State) NbDone() int { return len(s.done) }
