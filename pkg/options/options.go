// Package options declares command-line options as data. A Schema is bound
// onto a pflag.FlagSet, so option definitions stay independent of the
// command that registers them.
package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Kind is the value kind of an option.
type Kind int

const (
	String Kind = iota // Single string value
	Bool               // Presence flag, optionally given an explicit true/false
	List               // Comma-separated or repeated string values
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case List:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option describes one command-line option.
type Option struct {
	Name     string // Long name without leading dashes, e.g. "language"
	Short    string // Single-letter alias, may be empty
	Usage    string // Help text
	Kind     Kind   // Value kind
	Required bool   // Parsing fails when the option is absent
	Default  string // Default value in its textual form
}

// Flag returns the long form of the option as typed on the command line.
func (o Option) Flag() string {
	return "--" + o.Name
}

// Schema is an ordered set of options. Order is declaration order and is
// significant for response files.
type Schema []Option

// Names returns the long flags ("--name") in declaration order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, o := range s {
		names = append(names, o.Flag())
	}
	return names
}

// Lookup finds an option by name. Leading dashes are ignored, so both
// "language" and "--language" resolve.
func (s Schema) Lookup(name string) (Option, bool) {
	name = strings.TrimLeft(name, "-")
	for _, o := range s {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Merge returns a new schema holding s followed by the options of others.
func (s Schema) Merge(others ...Schema) Schema {
	merged := append(Schema{}, s...)
	for _, o := range others {
		merged = append(merged, o...)
	}
	return merged
}

// Bind registers every option of the schema on flags. Required options are
// marked with cobra's required-flag annotation, which cobra checks before a
// command runs.
func (s Schema) Bind(flags *pflag.FlagSet) error {
	seen := make(map[string]bool, len(s))
	for _, o := range s {
		if o.Name == "" {
			return fmt.Errorf("option with empty name")
		}
		if seen[o.Name] {
			return fmt.Errorf("duplicate option %q", o.Name)
		}
		seen[o.Name] = true

		switch o.Kind {
		case String:
			flags.StringP(o.Name, o.Short, o.Default, o.Usage)
		case Bool:
			def := false
			if o.Default != "" {
				v, err := strconv.ParseBool(o.Default)
				if err != nil {
					return fmt.Errorf("option %q: invalid bool default %q: %w", o.Name, o.Default, err)
				}
				def = v
			}
			flags.BoolP(o.Name, o.Short, def, o.Usage)
		case List:
			var def []string
			if o.Default != "" {
				def = strings.Split(o.Default, ",")
			}
			flags.StringSliceP(o.Name, o.Short, def, o.Usage)
		default:
			return fmt.Errorf("option %q: unsupported kind %s", o.Name, o.Kind)
		}

		if o.Required {
			if err := cobra.MarkFlagRequired(flags, o.Name); err != nil {
				return fmt.Errorf("failed to mark %q as required: %w", o.Name, err)
			}
		}
	}
	return nil
}
