// Package errors enriches rename failures with a category and actionable
// suggestions, so the shells can tell the user what to try instead of
// only echoing the OS error.
package errors

import "strings"

// Exported constants.
const (
	CategoryNameLength ErrorCategory = "name_length"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryRename     ErrorCategory = "rename"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
	Unwrap() error
}

// FormatSuggestions formats an ActionableError's suggestions as a
// bulleted list for display. Returns "" for nil or non-actionable errors.
func FormatSuggestions(err error) string {
	actionable, ok := err.(ActionableError)
	if !ok || len(actionable.Suggestions()) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range actionable.Suggestions() {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	wrapped      error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.wrapped.Error()
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap exposes the original error to errors.Is / errors.As.
func (e *actionableError) Unwrap() error {
	return e.wrapped
}
