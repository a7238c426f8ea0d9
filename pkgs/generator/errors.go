package generator

import "fmt"

// UnknownSectionError is returned when an article references a section
// name that was never declared. Suggestion, if non-empty, is the
// closest known section name by fuzzy distance.
type UnknownSectionError struct {
	Name       string
	Suggestion string
}

func (e *UnknownSectionError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown section %q", e.Name)
	}
	return fmt.Sprintf("unknown section %q (did you mean %q?)", e.Name, e.Suggestion)
}

// IoError wraps a sink write failure.
type IoError struct {
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("generator io error: %v", e.Cause)
}

func (e *IoError) Unwrap() error { return e.Cause }
