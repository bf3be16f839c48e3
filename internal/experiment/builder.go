// Package experiment writes standalone per-experiment override files. A
// builder never reads the base or global override layers: an experiment
// artifact contains exactly the parameters its author set and nothing else.
package experiment

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Delfictus/Prism-Tuning/internal/config"
	"github.com/Delfictus/Prism-Tuning/internal/ctxlog"
	"github.com/Delfictus/Prism-Tuning/internal/fsutil"
)

// Builder saves experiment override files into Dir using the catalog's
// emission order.
type Builder struct {
	Dir   string
	Order config.KeyOrder

	// Now overrides the header timestamp source in tests.
	Now func() time.Time
}

// NewBuilder returns a builder writing into dir.
func NewBuilder(dir string, order config.KeyOrder) *Builder {
	return &Builder{Dir: dir, Order: order}
}

// Save folds the edit batches into a fresh layer and writes it to
// <dir>/<name>.toml. Saving zero batches is a no-op, reported through
// saved == false with no file created. Spaces in the name are normalized
// to underscores.
func (b *Builder) Save(ctx context.Context, name string, batches []config.Edit) (path string, saved bool, err error) {
	if len(batches) == 0 {
		ctxlog.FromContext(ctx).Debug("experiment has no edits, nothing saved", "name", name)
		return "", false, nil
	}

	layer := config.Layer{}
	layer.Apply(batches)

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	header := []string{
		"PRISM Experiment Configuration",
		"Created: " + now().Format(time.RFC3339),
	}
	data := config.Encode(layer, b.Order, header)

	name = strings.ReplaceAll(name, " ", "_")
	path = filepath.Join(b.Dir, name+".toml")
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return "", false, &config.IOError{Op: "mkdir", Path: b.Dir, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, &config.IOError{Op: "write", Path: path, Err: err}
	}
	ctxlog.FromContext(ctx).Info("experiment saved", "name", name, "path", path)
	return path, true, nil
}

// List enumerates saved experiment names, skipping the shipped template
// and readme stems. The second return holds the matching file paths.
func (b *Builder) List() ([]string, []string, error) {
	entries, err := fsutil.FindFilesByExtension(b.Dir, ".toml")
	if err != nil {
		return nil, nil, err
	}
	var names, paths []string
	for _, p := range entries {
		stem := strings.TrimSuffix(filepath.Base(p), ".toml")
		if stem == "experiment_template" || stem == "README" {
			continue
		}
		names = append(names, stem)
		paths = append(paths, p)
	}
	return names, paths, nil
}
