package bundle

import (
	"fmt"
	"strings"

	"codebundle/pkg/exclude"

	"github.com/go-playground/validator/v10"
)

// SortMode selects the order in which files are concatenated.
type SortMode int

const (
	ByName SortMode = iota // Base file name, then full path
	ByType                 // Extension, then full path
)

func (m SortMode) String() string {
	if m == ByType {
		return "type"
	}
	return "name"
}

// ParseSortMode maps "type" to ByType. Any other value, including the empty
// string, selects ByName.
func ParseSortMode(s string) SortMode {
	if strings.EqualFold(strings.TrimSpace(s), "type") {
		return ByType
	}
	return ByName
}

// Request holds the options of one bundle invocation.
type Request struct {
	Root               string   `validate:"required"`                     // Directory to scan
	Languages          []string `validate:"required,min=1,dive,required"` // Language tokens or "all"
	Output             string   `validate:"required"`                     // Destination of the bundle
	IncludeSourceNotes bool     // Emit a "// Source:" line before each file
	Sort               SortMode // Concatenation order
	StripEmptyLines    bool     // Drop empty and whitespace-only lines
	Author             string   // Optional "// Author:" header

	// Exclude drops scanned paths before the extension filter. Nil selects
	// exclude.Default.
	Exclude exclude.Predicate
}

// Validate checks the request structure and the language tokens. It touches
// no files.
func (r *Request) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid bundle request: %w", err)
	}
	if _, err := ParseLanguages(r.Languages); err != nil {
		return err
	}
	return nil
}

func (r *Request) excluded() exclude.Predicate {
	if r.Exclude == nil {
		return exclude.Default()
	}
	return r.Exclude
}
