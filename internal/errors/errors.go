package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodePersistFailed   = "PERSIST_FAILED"
	CodeLoadFailed      = "LOAD_FAILED"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodePrefsInvalid    = "PREFS_INVALID"
	CodeRepoNotFound    = "REPO_NOT_FOUND"
	CodeDriverUnknown   = "DRIVER_UNKNOWN"
)

// SallieError is a structured error with a code and actionable suggestion.
type SallieError struct {
	Code       string // machine-readable code (e.g. INVALID_ARGUMENT)
	Message    string // human-readable description
	Suggestion string // actionable fix
	Err        error  // wrapped underlying error
}

// Error implements the error interface.
func (e *SallieError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap supports errors.Is / errors.As.
func (e *SallieError) Unwrap() error {
	return e.Err
}

// New creates a SallieError with the given code and message.
func New(code, message string) *SallieError {
	return &SallieError{Code: code, Message: message}
}

// Wrap creates a SallieError wrapping an existing error.
func Wrap(code, message string, err error) *SallieError {
	return &SallieError{Code: code, Message: message, Err: err}
}

// WithSuggestion returns a copy with the suggestion set.
func (e *SallieError) WithSuggestion(suggestion string) *SallieError {
	e.Suggestion = suggestion
	return e
}

// Is checks whether target matches this error's code.
func (e *SallieError) Is(target error) bool {
	var se *SallieError
	if errors.As(target, &se) {
		return e.Code == se.Code
	}
	return false
}

// AsCode extracts the SallieError code from an error, or "" if not a SallieError.
func AsCode(err error) string {
	var se *SallieError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// Suggestion extracts the suggestion from an error, or "" if not a SallieError.
func Suggestion(err error) string {
	var se *SallieError
	if errors.As(err, &se) {
		return se.Suggestion
	}
	return ""
}
