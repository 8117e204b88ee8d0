// Package rsp creates and expands response files: plain-text files of
// "--option value" lines that stand in for command-line arguments.
package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bitfield/script"
	"go.uber.org/zap"
)

var (
	ErrPromptInput = errors.New("failed to read answer")
	ErrFileRead    = errors.New("failed to read response file")
	ErrFileWrite   = errors.New("failed to write response file")
)

// Directive is one line of a response file.
type Directive struct {
	Option string // Long flag including dashes, e.g. "--language"
	Value  string // Raw value, may be empty
}

// String renders the directive as it appears in a response file.
func (d Directive) String() string {
	return d.Option + " " + d.Value
}

// Prompter asks for option values on an interactive stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and prints prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints a prompt for option and returns the next input line without its
// terminator. Answers are not validated; an empty line is a valid answer.
func (p *Prompter) Ask(option string) (string, error) {
	fmt.Fprintf(p.out, "Enter value for %s: ", option)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w for %s: %v", ErrPromptInput, option, err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Collect asks for every option in order.
func Collect(p *Prompter, options []string) ([]Directive, error) {
	directives := make([]Directive, 0, len(options))
	for _, opt := range options {
		value, err := p.Ask(opt)
		if err != nil {
			return nil, err
		}
		directives = append(directives, Directive{Option: opt, Value: value})
	}
	return directives, nil
}

// Write stores directives at path, one per line, replacing any existing file.
func Write(path string, directives []Directive, logger *zap.Logger) error {
	var sb strings.Builder
	for _, d := range directives {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}

	if _, err := script.Echo(sb.String()).WriteFile(path); err != nil {
		logger.Error("Failed to write response file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w %s: %v", ErrFileWrite, path, err)
	}
	logger.Debug("Wrote response file", zap.String("file", path), zap.Int("directives", len(directives)))
	return nil
}

// Create prompts for each option and writes the answers to path. Nothing is
// written unless every answer was read.
func Create(path string, options []string, p *Prompter, logger *zap.Logger) ([]Directive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	directives, err := Collect(p, options)
	if err != nil {
		logger.Error("Response file aborted", zap.Error(err))
		return nil, err
	}
	if err := Write(path, directives, logger); err != nil {
		return nil, err
	}
	logger.Info("Response file created", zap.String("file", path))
	return directives, nil
}
