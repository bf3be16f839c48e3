// Package fsutil provides file system helpers for locating run artifacts.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FindFilesByExtension recursively searches root for files ending with the
// given extension and returns their full paths in walk order. A missing
// root yields no matches rather than an error.
func FindFilesByExtension(root, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FileInfo describes one artifact for listings.
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// RecentFiles returns up to limit files under root with the given
// extension, newest first by modification time.
func RecentFiles(root, extension string, limit int) ([]FileInfo, error) {
	paths, err := FindFilesByExtension(root, extension)
	if err != nil {
		return nil, err
	}
	infos := make([]FileInfo, 0, len(paths))
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		infos = append(infos, FileInfo{Path: p, Size: st.Size(), ModTime: st.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ModTime.After(infos[j].ModTime) })
	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}
	return infos, nil
}
