package rsp

import (
	"fmt"
	"strings"

	"codebundle/pkg/options"

	"github.com/bitfield/script"
)

// Read parses the response file at path. Blank lines and lines starting with
// '#' are skipped. Each remaining line splits at its first space into option
// and value.
func Read(path string) ([]Directive, error) {
	lines, err := script.File(path).Slice()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrFileRead, path, err)
	}

	var directives []Directive
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		opt, value, _ := strings.Cut(line, " ")
		directives = append(directives, Directive{Option: opt, Value: value})
	}
	return directives, nil
}

// Args converts directives to command-line arguments. Directives with an
// empty value are dropped. Bool options become "--opt=value" so that an
// explicit false is honoured; every other option becomes "--opt value".
func Args(directives []Directive, schema options.Schema) []string {
	var args []string
	for _, d := range directives {
		if d.Value == "" {
			continue
		}
		if o, ok := schema.Lookup(d.Option); ok && o.Kind == options.Bool {
			args = append(args, d.Option+"="+strings.TrimSpace(d.Value))
			continue
		}
		args = append(args, d.Option, d.Value)
	}
	return args
}

// Expand replaces every "@path" argument with the arguments of the response
// file at path. Other arguments are kept in place. A lone "@" is not a
// response file reference.
func Expand(args []string, schema options.Schema) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '@' {
			expanded = append(expanded, arg)
			continue
		}
		directives, err := Read(arg[1:])
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, Args(directives, schema)...)
	}
	return expanded, nil
}
