package options

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	{Name: "language", Short: "l", Kind: List, Required: true, Usage: "languages"},
	{Name: "output", Short: "o", Kind: String, Required: true, Usage: "output"},
	{Name: "note", Short: "n", Kind: Bool, Usage: "note"},
	{Name: "sort", Short: "s", Kind: String, Default: "name", Usage: "sort"},
}

func TestSchema_Names(t *testing.T) {
	assert.Equal(t, []string{"--language", "--output", "--note", "--sort"}, testSchema.Names())
}

func TestSchema_Lookup(t *testing.T) {
	o, ok := testSchema.Lookup("--note")
	require.True(t, ok)
	assert.Equal(t, Bool, o.Kind)

	o, ok = testSchema.Lookup("sort")
	require.True(t, ok)
	assert.Equal(t, "name", o.Default)

	_, ok = testSchema.Lookup("--missing")
	assert.False(t, ok)
}

func TestSchema_Merge(t *testing.T) {
	extra := Schema{{Name: "exclude", Short: "x", Kind: List}}
	merged := testSchema.Merge(extra)

	assert.Len(t, merged, len(testSchema)+1)
	assert.Len(t, testSchema, 4, "merge must not modify the receiver")
	_, ok := merged.Lookup("exclude")
	assert.True(t, ok)
}

func TestSchema_Bind(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, testSchema.Bind(flags))

	require.NoError(t, flags.Parse([]string{"-l", "cs,py", "-l", "go", "-o", "out.txt", "-n"}))

	langs, err := flags.GetStringSlice("language")
	require.NoError(t, err)
	assert.Equal(t, []string{"cs", "py", "go"}, langs)

	out, err := flags.GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "out.txt", out)

	note, err := flags.GetBool("note")
	require.NoError(t, err)
	assert.True(t, note)

	sortMode, err := flags.GetString("sort")
	require.NoError(t, err)
	assert.Equal(t, "name", sortMode)
}

func TestSchema_BindMarksRequired(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, testSchema.Bind(flags))

	for _, name := range []string{"language", "output"} {
		f := flags.Lookup(name)
		require.NotNil(t, f)
		assert.Equal(t, []string{"true"}, f.Annotations[cobra.BashCompOneRequiredFlag], name)
	}
	assert.Empty(t, flags.Lookup("note").Annotations)
}

func TestSchema_BindErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{"duplicate", Schema{{Name: "a"}, {Name: "a"}}},
		{"empty name", Schema{{Name: ""}}},
		{"bad bool default", Schema{{Name: "b", Kind: Bool, Default: "maybe"}}},
		{"unknown kind", Schema{{Name: "c", Kind: Kind(42)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			assert.Error(t, tt.schema.Bind(flags))
		})
	}
}
