package dataprocessing

import "fmt"

// LoadError reports a file that could not be turned into a RawTable: wrong
// format, corrupt stream, or not enough rows to clear the banner block.
type LoadError struct {
	File  string
	Cause error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s file: %v", e.File, e.Cause)
}

// Unwrap allows errors.Is and errors.As to reach the underlying cause
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a LoadError for the given report file
func NewLoadError(file string, cause error) *LoadError {
	return &LoadError{File: file, Cause: cause}
}

// MissingColumnError reports that a required logical field had no matching
// alias in the file's header row.
type MissingColumnError struct {
	File  string
	Field string
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("could not find the '%s' column in %s file", e.Field, e.File)
}

// NewMissingColumnError creates a MissingColumnError for the given file and field
func NewMissingColumnError(file, field string) *MissingColumnError {
	return &MissingColumnError{File: file, Field: field}
}
