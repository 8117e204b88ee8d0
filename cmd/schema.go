package cmd

import (
	"codebundle/pkg/exclude"
	"codebundle/pkg/options"
)

// responseOptions are the bundle options a response file captures, in the
// order create-rsp prompts for them.
var responseOptions = options.Schema{
	{Name: "language", Short: "l", Kind: options.List, Required: true,
		Usage: "Languages to include: cs, py, java, js, go, or all"},
	{Name: "output", Short: "o", Kind: options.String, Required: true,
		Usage: "Path of the bundle to write"},
	{Name: "note", Short: "n", Kind: options.Bool,
		Usage: "Add a \"// Source: <path>\" line before each file"},
	{Name: "sort", Short: "s", Kind: options.String, Default: "name",
		Usage: "Sort files by name or type"},
	{Name: "remove-empty-lines", Short: "r", Kind: options.Bool,
		Usage: "Drop empty and whitespace-only lines"},
	{Name: "author", Short: "a", Kind: options.String,
		Usage: "Add a \"// Author: <name>\" header"},
}

// bundleExtraOptions are accepted by bundle but never prompted for.
var bundleExtraOptions = options.Schema{
	{Name: "exclude", Short: "x", Kind: options.List,
		Usage: "Additional gitignore-style patterns to exclude (repeatable)"},
	{Name: "exclude-mode", Kind: options.String, Default: exclude.ModeSubstring,
		Usage: "How bin/debug directories are skipped: substring or segment"},
}

var createRspOptions = options.Schema{
	{Name: "output", Short: "o", Kind: options.String, Required: true,
		Usage: "Path of the response file to write"},
}

func bundleOptions() options.Schema {
	return responseOptions.Merge(bundleExtraOptions)
}
