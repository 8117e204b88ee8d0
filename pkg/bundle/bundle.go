// Package bundle concatenates the source files of a directory tree into a
// single text file.
//
// A run validates the request, scans the root directory, filters and sorts
// the candidates, reads them in order into one buffer and writes the buffer
// to the output path in a single step. Any failure aborts the run before the
// output file is touched.
package bundle

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Result describes a completed bundle.
type Result struct {
	Output string // Absolute path of the written bundle
	Files  []File // Files included, in bundle order
	Bytes  int    // Size of the bundle
}

// Run executes one bundle request. Relative output paths are resolved
// against req.Root.
func Run(req Request, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		logger.Error("Rejected bundle request", zap.Error(err))
		return nil, err
	}
	langs, err := ParseLanguages(req.Languages)
	if err != nil {
		return nil, err
	}
	logger.Info("Starting bundle",
		zap.String("directory", req.Root),
		zap.Strings("languages", langs),
		zap.Stringer("sort", req.Sort))

	candidates, err := Scan(req.Root, logger)
	if err != nil {
		return nil, err
	}

	files := Sort(Filter(candidates, langs, req.excluded(), logger), req.Sort)
	logger.Debug("Selected files", zap.Int("candidates", len(candidates)), zap.Int("selected", len(files)))
	if len(files) == 0 {
		logger.Warn("No files matched the requested languages", zap.Strings("languages", langs))
	}

	content, err := Assemble(files, req, logger)
	if err != nil {
		return nil, err
	}

	output := req.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(req.Root, output)
	}
	written, err := Write(output, content, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}

	logger.Info("Bundle completed",
		zap.String("outputFile", written),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{Output: written, Files: files, Bytes: len(content)}, nil
}
