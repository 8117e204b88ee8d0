package rsp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codebundle/pkg/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sixOptions = []string{"--language", "--output", "--note", "--sort", "--remove-empty-lines", "--author"}

var testSchema = options.Schema{
	{Name: "language", Short: "l", Kind: options.List, Required: true},
	{Name: "output", Short: "o", Kind: options.String, Required: true},
	{Name: "note", Short: "n", Kind: options.Bool},
	{Name: "sort", Short: "s", Kind: options.String, Default: "name"},
	{Name: "remove-empty-lines", Short: "r", Kind: options.Bool},
	{Name: "author", Short: "a", Kind: options.String},
}

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("cs,py\r\n\n  spaced  \nlast"), &out)

	for _, want := range []string{"cs,py", "", "  spaced  ", "last"} {
		got, err := p.Ask("--x")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, strings.Repeat("Enter value for --x: ", 4), out.String())

	_, err := p.Ask("--y")
	assert.ErrorIs(t, err, ErrPromptInput)
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.rsp")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	var out bytes.Buffer
	input := "cs,py\nout.txt\ntrue\ntype\n\nJane Doe\n"
	directives, err := Create(path, sixOptions, NewPrompter(strings.NewReader(input), &out), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, directives, 6)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "--language cs,py\n" +
		"--output out.txt\n" +
		"--note true\n" +
		"--sort type\n" +
		"--remove-empty-lines \n" +
		"--author Jane Doe\n"
	assert.Equal(t, want, string(data))

	for _, opt := range sixOptions {
		assert.Contains(t, out.String(), "Enter value for "+opt+": ")
	}
}

func TestCreate_ShortInputWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.rsp")

	_, err := Create(path, sixOptions, NewPrompter(strings.NewReader("cs\nout.txt\n"), &bytes.Buffer{}), zap.NewNop())
	require.ErrorIs(t, err, ErrPromptInput)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreate_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "bundle.rsp")
	input := strings.Repeat("v\n", len(sixOptions))

	_, err := Create(path, sixOptions, NewPrompter(strings.NewReader(input), &bytes.Buffer{}), zap.NewNop())
	assert.ErrorIs(t, err, ErrFileWrite)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.rsp")
	content := "# saved options\n--language go\n\n--author Jane Doe\n--note \n--sort\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []Directive{
		{Option: "--language", Value: "go"},
		{Option: "--author", Value: "Jane Doe"},
		{Option: "--note", Value: ""},
		{Option: "--sort", Value: ""},
	}, got)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "none.rsp"))
	assert.ErrorIs(t, err, ErrFileRead)
}

func TestArgs(t *testing.T) {
	directives := []Directive{
		{Option: "--language", Value: "cs,py"},
		{Option: "--output", Value: "out.txt"},
		{Option: "--note", Value: "true"},
		{Option: "--sort", Value: ""},
		{Option: "--remove-empty-lines", Value: "False"},
		{Option: "--author", Value: "Jane Doe"},
		{Option: "--unknown", Value: "x"},
	}

	assert.Equal(t, []string{
		"--language", "cs,py",
		"--output", "out.txt",
		"--note=true",
		"--remove-empty-lines=False",
		"--author", "Jane Doe",
		"--unknown", "x",
	}, Args(directives, testSchema))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.rsp")
	require.NoError(t, os.WriteFile(path, []byte("--language go\n--output out.txt\n--note true\n"), 0o644))

	got, err := Expand([]string{"bundle", "@" + path, "--author", "Jane", "@"}, testSchema)
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle", "--language", "go", "--output", "out.txt", "--note=true", "--author", "Jane", "@"}, got)

	_, err = Expand([]string{"bundle", "@" + filepath.Join(dir, "nope.rsp")}, testSchema)
	assert.ErrorIs(t, err, ErrFileRead)
}
