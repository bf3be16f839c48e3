package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/Delfictus/Prism-Tuning/internal/ctxlog"
)

// Store reads and writes the two persisted layers. The base layer is never
// mutated on disk; only the override layer is rewritten. Access is
// single-operator read-modify-write with no locking.
type Store struct {
	BasePath     string
	OverridePath string
	Order        KeyOrder

	// Now overrides the header timestamp source in tests.
	Now func() time.Time
}

// NewStore wires a store over the given layer files. order may be nil for
// pure lexicographic emission.
func NewStore(basePath, overridePath string, order KeyOrder) *Store {
	return &Store{BasePath: basePath, OverridePath: overridePath, Order: order}
}

func (s *Store) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// LoadActive merges the override layer onto a copy of the base layer and
// returns the result. A missing file on either side contributes an empty
// layer; malformed text is a *ParseError.
func (s *Store) LoadActive(ctx context.Context) (Layer, error) {
	base, err := loadLayer(s.BasePath)
	if err != nil {
		return nil, err
	}
	over, err := loadLayer(s.OverridePath)
	if err != nil {
		return nil, err
	}
	active := base.Clone()
	active.Merge(over)
	ctxlog.FromContext(ctx).Debug("active config assembled",
		"base", s.BasePath, "override", s.OverridePath, "keys", len(active))
	return active, nil
}

// LoadOverride returns the persisted override layer alone, as a fresh copy.
// An absent file yields an empty layer.
func (s *Store) LoadOverride(ctx context.Context) (Layer, error) {
	over, err := loadLayer(s.OverridePath)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("override layer loaded",
		"path", s.OverridePath, "keys", len(over))
	return over, nil
}

// ApplyEdits folds the edit batches into the persisted override layer in
// order and writes it back. A later batch wins over an earlier one for the
// same (section, key).
func (s *Store) ApplyEdits(ctx context.Context, edits []Edit) error {
	over, err := loadLayer(s.OverridePath)
	if err != nil {
		return err
	}
	over.Apply(edits)
	if err := s.WriteOverride(ctx, over); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("override layer updated",
		"path", s.OverridePath, "batches", len(edits))
	return nil
}

// WriteOverride serializes the layer to the override path, creating parent
// directories as needed.
func (s *Store) WriteOverride(ctx context.Context, layer Layer) error {
	header := []string{
		"PRISM CLI Managed Overrides",
		"Last updated: " + s.clock().Format(time.RFC3339),
	}
	data := Encode(layer, s.Order, header)
	if err := os.MkdirAll(filepath.Dir(s.OverridePath), 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: filepath.Dir(s.OverridePath), Err: err}
	}
	if err := os.WriteFile(s.OverridePath, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: s.OverridePath, Err: err}
	}
	ctxlog.FromContext(ctx).Debug("override layer written", "path", s.OverridePath)
	return nil
}

// loadLayer reads and parses one layer file. Absence is an empty layer,
// not an error.
func loadLayer(path string) (Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layer{}, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	layer, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return layer, nil
}
