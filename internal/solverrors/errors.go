// Package solverrors defines the error kinds of spec.md §7: configuration
// errors, search termination, invariant violations and "no solution
// found". Grounded on the pack's junjiewwang-perf-analysis/pkg/errors
// AppError shape (a code, a message, an optional wrapped cause).
package solverrors

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeConfig    = "CONFIG_ERROR"
	CodeTimeout   = "SEARCH_TIMEOUT"
	CodeInvariant = "INVARIANT_VIOLATION"
	CodeNoSolution = "NO_SOLUTION"
)

// AppError is an application error carrying a stable code so callers can
// branch on Is/errors.As without string-matching messages.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewConfigError wraps a malformed-parameter or unsupported-objective
// error. Per spec.md §7 this is reported once; the caller decides
// whether to continue with defaults or abort.
func NewConfigError(message string, cause error) *AppError {
	return &AppError{Code: CodeConfig, Message: message, Err: cause}
}

// NewInvariantError marks a programmer error caught by post-conversion
// checking: a cut crossing a defect, an overlapping item, a min/max-cut
// violation, or an item produced beyond its copy count.
func NewInvariantError(message string) *AppError {
	return &AppError{Code: CodeInvariant, Message: message}
}

// NewNoSolutionError marks the legitimate (non-error) outcome where no
// child ever improved the incumbent.
func NewNoSolutionError(message string) *AppError {
	return &AppError{Code: CodeNoSolution, Message: message}
}

// ErrSearchTimeout is the error value for a deadline that expires
// mid-search. It is advisory, not a failure: solutions published before
// expiry remain valid. The search driver itself stops silently on
// expiry and does not return it.
var ErrSearchTimeout = &AppError{Code: CodeTimeout, Message: "search deadline exceeded"}
