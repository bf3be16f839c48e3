package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "base.toml"), filepath.Join(dir, "overrides", "global_hyper.toml"), nil)
	s.Now = fixedClock
	return s
}

func TestStore_LoadActive_MissingFilesAreEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	active, err := s.LoadActive(context.Background())

	require.NoError(t, err)
	require.Empty(t, active)
}

func TestStore_LoadActive_OverrideWins(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.BasePath, []byte("seed = 9001\n\n[gpu]\nbatch_size = 2048\nstreams = 4\n"), 0o644))
	require.NoError(t, s.WriteOverride(context.Background(), Layer{
		"gpu": Section(Layer{"batch_size": Int(4096)}),
	}))

	// --- Act ---
	active, err := s.LoadActive(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, active.Equal(Layer{
		"seed": Int(9001),
		"gpu": Section(Layer{
			"batch_size": Int(4096),
			"streams":    Int(4),
		}),
	}))
}

func TestStore_ApplyEdits_PersistsAcrossLoads(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	err := s.ApplyEdits(ctx, []Edit{
		{Section: "", Params: map[string]Value{"use_tda": Bool(true)}},
		{Section: "thermo", Params: map[string]Value{"replicas": Int(48)}},
	})
	require.NoError(t, err)

	// A second batch layers on top of the persisted state.
	err = s.ApplyEdits(ctx, []Edit{
		{Section: "thermo", Params: map[string]Value{"num_temps": Int(48)}},
	})
	require.NoError(t, err)

	over, err := s.LoadOverride(ctx)
	require.NoError(t, err)
	require.True(t, over.Equal(Layer{
		"use_tda": Bool(true),
		"thermo": Section(Layer{
			"replicas":  Int(48),
			"num_temps": Int(48),
		}),
	}))
}

func TestStore_WriteOverride_HeaderAndDeterminism(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	layer := Layer{"seed": Int(1337), "note": String("wr attempt")}

	require.NoError(t, s.WriteOverride(context.Background(), layer))
	first, err := os.ReadFile(s.OverridePath)
	require.NoError(t, err)

	require.Equal(t, "# PRISM CLI Managed Overrides\n"+
		"# Last updated: 2025-06-01T12:00:00Z\n\n"+
		"note = \"wr attempt\"\nseed = 1337\n", string(first))

	// The same layer and clock produce identical bytes on rewrite.
	require.NoError(t, s.WriteOverride(context.Background(), layer))
	second, err := os.ReadFile(s.OverridePath)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestStore_LoadActive_MalformedBaseIsParseError(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.BasePath, []byte("x = = 2\n"), 0o644))

	_, err := s.LoadActive(context.Background())

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, s.BasePath, perr.Path)
}
