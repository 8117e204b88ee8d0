package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"codebundle/pkg/exclude"

	"github.com/bitfield/script"
	"go.uber.org/zap"
)

// File is a candidate file discovered by Scan.
type File struct {
	Path string // Absolute path
	Ext  string // Extension including the leading dot, may be empty
}

// Name returns the base name of the file.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Scan lists every file below root at any depth. The order of the result is
// unspecified.
func Scan(root string, logger *zap.Logger) ([]File, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingWorkingDirectory, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		logger.Error("Failed to access directory", zap.String("directory", absRoot), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMissingWorkingDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingWorkingDirectory, absRoot)
	}

	paths, err := script.FindFiles(absRoot).Slice()
	if err != nil {
		logger.Error("Failed to traverse directory", zap.String("directory", absRoot), zap.Error(err))
		return nil, fmt.Errorf("failed to scan %s: %w", absRoot, err)
	}

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		// An empty listing still yields one blank line.
		if p == "" {
			continue
		}
		files = append(files, File{Path: p, Ext: filepath.Ext(p)})
	}
	logger.Debug("Scanned directory", zap.String("directory", absRoot), zap.Int("files", len(files)))
	return files, nil
}

// Filter drops excluded paths, then keeps the files whose extension matches
// one of langs. langs must already be normalized by ParseLanguages.
func Filter(files []File, langs []string, excluded exclude.Predicate, logger *zap.Logger) []File {
	all := matchesAll(langs)
	exts := extensions(langs)

	var kept []File
	for _, f := range files {
		if excluded != nil && excluded(f.Path) {
			logger.Debug("Skipping excluded path", zap.String("file", f.Path))
			continue
		}
		if !all && !exts[f.Ext] {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// Sort returns a copy of files in the order selected by mode. Ties are broken
// by full path, so the result is deterministic.
func Sort(files []File, mode SortMode) []File {
	sorted := append([]File(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		var ka, kb string
		if mode == ByType {
			ka, kb = a.Ext, b.Ext
		} else {
			ka, kb = a.Name(), b.Name()
		}
		if c := strings.Compare(ka, kb); c != 0 {
			return c < 0
		}
		return a.Path < b.Path
	})
	return sorted
}
