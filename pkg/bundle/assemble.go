package bundle

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/bitfield/script"
	"go.uber.org/zap"
)

// Newline is the line separator written to bundles.
var Newline = platformNewline()

const (
	authorPrefix = "// Author: "
	sourcePrefix = "// Source: "
)

// blankLine matches empty lines and lines made only of whitespace.
var blankLine = regexp.MustCompile(`^[\s\v\p{Z}\x{85}\x{FEFF}]*$`)

func platformNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Assemble reads files in the given order and returns the bundle text. The
// first read failure aborts assembly and nothing is returned.
func Assemble(files []File, req Request, logger *zap.Logger) (string, error) {
	var sb strings.Builder

	if req.Author != "" {
		sb.WriteString(authorPrefix + req.Author + Newline)
	}

	for _, f := range files {
		if req.IncludeSourceNotes {
			sb.WriteString(sourcePrefix + f.Path + Newline)
		}

		lines, err := readLines(f.Path, req.StripEmptyLines)
		if err != nil {
			logger.Error("Failed to read file", zap.String("file", f.Path), zap.Error(err))
			return "", fmt.Errorf("%w %s: %v", ErrFileRead, f.Path, err)
		}
		logger.Debug("Read file", zap.String("file", f.Path), zap.Int("lines", len(lines)))

		sb.WriteString(strings.Join(lines, Newline))
		sb.WriteString(Newline)
		sb.WriteString(Newline)
	}

	return sb.String(), nil
}

// readLines returns the lines of path without their terminators.
func readLines(path string, stripEmpty bool) ([]string, error) {
	p := script.File(path)
	if stripEmpty {
		p = p.RejectRegexp(blankLine)
	}
	return p.Slice()
}
