package bundle

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// AllLanguages selects every file when it is the only requested token.
const AllLanguages = "all"

// Languages lists the recognized language tokens. Each token is also the file
// extension it selects, without the dot.
var Languages = []string{"cs", "py", "java", "js", "go"}

// IsLanguage reports whether token is a recognized language token.
func IsLanguage(token string) bool {
	for _, l := range Languages {
		if l == token {
			return true
		}
	}
	return false
}

// ParseLanguages normalizes the requested tokens: comma-separated entries are
// split, whitespace is trimmed, tokens are lowercased, blanks and duplicates
// are dropped. Every unrecognized token is reported; the returned error wraps
// ErrInvalidLanguage once per bad token.
func ParseLanguages(tokens []string) ([]string, error) {
	var (
		langs []string
		errs  error
	)
	seen := make(map[string]bool)

	for _, raw := range tokens {
		for _, tok := range strings.Split(raw, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" || seen[tok] {
				continue
			}
			seen[tok] = true

			if tok != AllLanguages && !IsLanguage(tok) {
				errs = multierr.Append(errs, fmt.Errorf("%w: %q (supported: %s, %s)",
					ErrInvalidLanguage, tok, strings.Join(Languages, ", "), AllLanguages))
				continue
			}
			langs = append(langs, tok)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return langs, nil
}

// matchesAll reports whether langs is exactly the wildcard set.
func matchesAll(langs []string) bool {
	return len(langs) == 1 && langs[0] == AllLanguages
}

// extensions returns the dotted extensions selected by langs.
func extensions(langs []string) map[string]bool {
	exts := make(map[string]bool, len(langs))
	for _, l := range langs {
		exts["."+l] = true
	}
	return exts
}
