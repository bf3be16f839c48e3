package experiment

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Delfictus/Prism-Tuning/internal/config"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder(filepath.Join(t.TempDir(), "overrides"), nil)
	b.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestSave_NoEditsIsNoOp(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)

	path, saved, err := b.Save(context.Background(), "empty_run", nil)

	require.NoError(t, err)
	require.False(t, saved)
	require.Empty(t, path)
	_, err = os.Stat(filepath.Join(b.Dir, "empty_run.toml"))
	require.True(t, os.IsNotExist(err))
}

func TestSave_WritesStandaloneFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b := newTestBuilder(t)
	batches := []config.Edit{
		{Section: "", Params: map[string]config.Value{"seed": config.Int(1337)}},
		{Section: "thermo", Params: map[string]config.Value{"replicas": config.Int(56)}},
	}

	// --- Act ---
	path, saved, err := b.Save(context.Background(), "wr push 3", batches)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, saved)
	require.Equal(t, filepath.Join(b.Dir, "wr_push_3.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# PRISM Experiment Configuration\n"+
		"# Created: 2025-06-01T12:00:00Z\n\n"+
		"seed = 1337\n\n[thermo]\nreplicas = 56\n", string(data))
}

func TestSave_FileParsesBackToSameLayer(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	batches := []config.Edit{
		{Section: "gpu", Params: map[string]config.Value{
			"batch_size": config.Int(4096),
		}},
		{Section: "", Params: map[string]config.Value{
			"max_runtime_hours": config.Float(72.0),
		}},
	}

	path, _, err := b.Save(context.Background(), "deep", batches)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	layer, err := config.Parse(data)
	require.NoError(t, err)

	want := config.Layer{}
	want.Apply(batches)
	require.True(t, layer.Equal(want))
}

func TestList_SkipsTemplateAndReadme(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	require.NoError(t, os.MkdirAll(b.Dir, 0o755))
	for _, stem := range []string{"experiment_template", "README", "wr_push_3", "aggressive_thermo"} {
		require.NoError(t, os.WriteFile(filepath.Join(b.Dir, stem+".toml"), []byte("seed = 1\n"), 0o644))
	}

	names, paths, err := b.List()

	require.NoError(t, err)
	require.ElementsMatch(t, []string{"wr_push_3", "aggressive_thermo"}, names)
	require.Len(t, paths, 2)
}

func TestList_MissingDir(t *testing.T) {
	t.Parallel()

	b := NewBuilder(filepath.Join(t.TempDir(), "does_not_exist"), nil)

	names, paths, err := b.List()

	require.NoError(t, err)
	require.Empty(t, names)
	require.Empty(t, paths)
}
