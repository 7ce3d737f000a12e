package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/zklings/zklings/internal/buildinfo"
	"github.com/zklings/zklings/internal/exercise"
	"github.com/zklings/zklings/internal/inspect"
)

// cacheName is the metrics cache file under the state dir.
const cacheName = "metrics.cbor"

type cache struct {
	// Version invalidates the cache across tool upgrades, since circuit
	// sizes depend on the compiler.
	Version string                     `cbor:"version"`
	Metrics map[string]inspect.Summary `cbor:"metrics"`
}

func newCache() *cache {
	return &cache{Version: buildinfo.Version, Metrics: make(map[string]inspect.Summary)}
}

func cachePath(root string) string {
	return filepath.Join(root, exercise.StateDir, cacheName)
}

func loadCache(root string) (*cache, error) {
	data, err := os.ReadFile(cachePath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return newCache(), nil
		}
		return nil, err
	}
	var c cache
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode metrics cache: %w", err)
	}
	if c.Version != buildinfo.Version || c.Metrics == nil {
		return newCache(), nil
	}
	return &c, nil
}

func saveCache(root string, c *cache) error {
	if err := os.MkdirAll(filepath.Join(root, exercise.StateDir), 0o755); err != nil {
		return err
	}
	data, err := cbor.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(cachePath(root), data, 0o644)
}
