package bundle

import "errors"

// Errors returned by the bundle pipeline. They are wrapped with context, so
// compare with errors.Is.
var (
	ErrInvalidLanguage         = errors.New("invalid language")
	ErrMissingWorkingDirectory = errors.New("working directory is not accessible")
	ErrFileRead                = errors.New("failed to read file")
	ErrFileWrite               = errors.New("failed to write file")
)
