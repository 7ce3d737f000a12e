package stats

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/zklings/zklings/internal/inspect"
)

func TestTopic(t *testing.T) {
	require.Equal(t, "01_multiplication", topic("01_multiplication/mul1"))
	require.Equal(t, "08_quiz", topic("08_quiz"))
}

func TestCacheRoundTrip(t *testing.T) {
	root := t.TempDir()

	c := newCache()
	c.Metrics["mul1"] = inspect.Summary{Constraints: 1, Public: 2, Secret: 2}
	c.Metrics["poly1"] = inspect.Summary{Constraints: 3, Public: 2, Secret: 1, Internal: 2}
	require.NoError(t, saveCache(root, c))

	got, err := loadCache(root)
	require.NoError(t, err)
	if diff := cmp.Diff(c.Metrics, got.Metrics); diff != "" {
		t.Fatalf("cache mismatch (-want +got):\n%s", diff)
	}
}

func TestCacheMissingIsEmpty(t *testing.T) {
	got, err := loadCache(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, got.Metrics)
}

func TestWriteChart(t *testing.T) {
	metrics := []Metric{
		{Name: "mul1", Topic: "01_multiplication", Done: true, Size: inspect.Summary{Constraints: 1}},
		{Name: "poly1", Topic: "02_polynomials", Size: inspect.Summary{Constraints: 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, metrics))

	html := buf.String()
	require.Contains(t, html, "Reference circuit sizes")
	require.Contains(t, html, "Progress by topic")
	require.Contains(t, html, "mul1")
}
