package exercise

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"github.com/zklings/zklings/internal/buildinfo"
)

// ManifestFile is the curriculum manifest, expected at the repository root.
const ManifestFile = "info.yaml"

// ErrNoManifest is returned when no manifest is found walking up from
// the working directory.
var ErrNoManifest = errors.New("info.yaml not found; run zklings from a zklings checkout")

// Manifest is the parsed curriculum.
type Manifest struct {
	FormatVersion  int        `yaml:"format_version"`
	MinVersion     string     `yaml:"min_version"`
	WelcomeMessage string     `yaml:"welcome_message"`
	FinalMessage   string     `yaml:"final_message"`
	Exercises      []Exercise `yaml:"exercises"`

	root   string
	byName map[string]int
}

// FindRoot walks up from dir until it finds the manifest file.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoManifest
		}
		dir = parent
	}
}

// Load reads and validates the manifest at root.
func Load(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	m.root = root
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.FormatVersion != 1 {
		return fmt.Errorf("unsupported manifest format_version %d", m.FormatVersion)
	}
	if m.MinVersion != "" {
		min, err := semver.ParseTolerant(m.MinVersion)
		if err != nil {
			return fmt.Errorf("manifest min_version %q: %w", m.MinVersion, err)
		}
		cur, err := buildinfo.Semver()
		if err != nil {
			return fmt.Errorf("tool version %q: %w", buildinfo.Version, err)
		}
		if cur.LT(min) {
			return fmt.Errorf("this curriculum needs zklings >= %s, you have %s", min, cur)
		}
	}
	if len(m.Exercises) == 0 {
		return errors.New("manifest lists no exercises")
	}
	m.byName = make(map[string]int, len(m.Exercises))
	for i := range m.Exercises {
		e := &m.Exercises[i]
		if _, dup := m.byName[e.Name]; dup {
			return fmt.Errorf("duplicate exercise name %q", e.Name)
		}
		if err := e.validate(m.root); err != nil {
			return err
		}
		m.byName[e.Name] = i
	}
	return nil
}

// Root returns the repository root the manifest was loaded from.
func (m *Manifest) Root() string { return m.root }

// Get returns the exercise with the given name.
func (m *Manifest) Get(name string) (*Exercise, error) {
	i, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("no exercise named %q (see `zklings list`)", name)
	}
	return &m.Exercises[i], nil
}

// Names returns the exercise names in curriculum order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Exercises))
	for i := range m.Exercises {
		names[i] = m.Exercises[i].Name
	}
	return names
}
