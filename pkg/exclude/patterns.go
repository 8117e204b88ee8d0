package exclude

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern is one compiled gitignore-style line.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled expression matched against slash-separated relative paths
	Negate bool           // Line started with '!'
	Line   string         // Original line
	LineNo int            // 1-based position in the input
}

// Matcher evaluates a list of patterns. The last matching pattern wins, so a
// negated line can re-include a path excluded earlier.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// Compile parses gitignore-style lines. Blank lines and '#' comments are
// skipped; lines that cannot be compiled are logged and dropped.
func Compile(lines []string, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}
	for i, line := range lines {
		p, err := parsePattern(line)
		if err != nil {
			logger.Warn("Invalid exclude pattern",
				zap.String("pattern", line),
				zap.Int("lineNo", i+1),
				zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		p.LineNo = i + 1
		m.patterns = append(m.patterns, p)
		logger.Debug("Compiled exclude pattern",
			zap.String("pattern", line),
			zap.String("regexp", p.Regexp.String()),
			zap.Bool("negate", p.Negate))
	}
	return m
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Match reports whether the relative path is excluded.
func (m *Matcher) Match(relPath string) bool {
	relPath = strings.TrimPrefix(filepath.ToSlash(relPath), "./")

	matched := false
	for _, p := range m.patterns {
		if p.Regexp.MatchString(relPath) {
			matched = !p.Negate
		}
	}
	return matched
}

// Predicate adapts the matcher to absolute paths below root.
func (m *Matcher) Predicate(root string) Predicate {
	return func(path string) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		excluded := m.Match(rel)
		if excluded {
			m.logger.Debug("Path matches exclude pattern", zap.String("path", rel))
		}
		return excluded
	}
}

// parsePattern returns nil for blank and comment lines.
func parsePattern(line string) (*Pattern, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	body := strings.TrimSuffix(trimmed, "/")

	// A slash anywhere but the end anchors the pattern to the root.
	anchored := strings.Contains(body, "/")
	body = strings.TrimPrefix(body, "/")

	var expr strings.Builder
	expr.WriteString("^")
	if !anchored {
		expr.WriteString("(.*/)?")
	}
	expr.WriteString(globToRegexp(body))
	if dirOnly {
		expr.WriteString("/.*$")
	} else {
		expr.WriteString("(/.*)?$")
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, err
	}
	return &Pattern{Regexp: re, Negate: negate, Line: line}, nil
}

// globToRegexp converts '*', '?' and '**' to their regular expression forms
// and quotes everything else.
func globToRegexp(glob string) string {
	runes := []rune(glob)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '*' && i+1 < len(runes) && runes[i+1] == '*':
			if i+2 < len(runes) && runes[i+2] == '/' {
				b.WriteString("(.*/)?")
				i += 2
			} else {
				b.WriteString(".*")
				i++
			}
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}
