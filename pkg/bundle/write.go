package bundle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Write stores content at path, replacing any existing file, and returns the
// absolute path written. Content goes to a temporary file in the same
// directory that is renamed into place, so a failed write leaves no partial
// bundle behind.
func Write(path, content string, logger *zap.Logger) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, path, err)
	}

	dir := filepath.Dir(absPath)
	if err := ensureDirectory(dir, logger); err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, absPath, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".*")
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, absPath, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	writer := bufio.NewWriter(tmp)
	if _, err := writer.WriteString(content); err != nil {
		cleanup()
		logger.Error("Failed to write output file", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, absPath, err)
	}
	if err := writer.Flush(); err != nil {
		cleanup()
		logger.Error("Failed to flush output file", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, absPath, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		logger.Warn("Failed to set output file permissions", zap.String("file", absPath), zap.Error(err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		logger.Error("Failed to close output file", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, absPath, err)
	}

	if err := os.Rename(tmpPath, absPath); err != nil {
		_ = os.Remove(tmpPath)
		logger.Error("Failed to move output file into place", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("%w %s: %v", ErrFileWrite, absPath, err)
	}

	logger.Debug("Successfully wrote file", zap.String("path", absPath), zap.Int("bytes", len(content)))
	return absPath, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
