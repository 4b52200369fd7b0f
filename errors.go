package filemagic

import (
	"errors"
	"fmt"
	"strings"
)

// Rule table errors
var (
	ErrInvalidRule    = errors.New("invalid rule")
	ErrNoRules        = errors.New("rule table is empty")
	ErrEmptyRule      = errors.New("rule has neither a start nor an end pattern")
	ErrUnknownType    = errors.New("rule maps to the unknown file type")
	ErrAnchorMismatch = errors.New("pattern anchor does not match its slot")
	ErrNegativeOffset = errors.New("pattern offset is negative")
)

// Input and detection errors
var (
	ErrNilReader      = errors.New("nil reader")
	ErrInvalidSize    = errors.New("invalid input size")
	ErrIsDir          = errors.New("is a directory")
	ErrNoMatch        = errors.New("no known file signature")
	ErrTypeNotAllowed = errors.New("file type not allowed")
	ErrUnknownName    = errors.New("unknown file type name")
)

// RuleError records the position and cause of a malformed rule.
type RuleError struct {
	Index int
	Type  FileType
	Err   error
}

// Error implements the error interface
func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %d (%s): %v", e.Index, e.Type, e.Err)
}

// Unwrap returns the underlying error
func (e *RuleError) Unwrap() error {
	return e.Err
}

// Is makes every RuleError match ErrInvalidRule.
func (e *RuleError) Is(target error) bool {
	return target == ErrInvalidRule
}

// DetectError records a failed read and the operation and path that caused it
type DetectError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *DetectError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *DetectError) Unwrap() error {
	return e.Err
}

// MismatchError is returned by Expect when the detected type is not allowed.
type MismatchError struct {
	Detected FileType
	Allowed  []FileType
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, t := range e.Allowed {
		names[i] = t.String()
	}
	return fmt.Sprintf("%v: got %s, want one of [%s]", ErrTypeNotAllowed, e.Detected, strings.Join(names, ", "))
}

// Unwrap returns ErrTypeNotAllowed
func (e *MismatchError) Unwrap() error {
	return ErrTypeNotAllowed
}

// IsInvalidRule reports whether err was caused by a malformed rule table
func IsInvalidRule(err error) bool {
	return errors.Is(err, ErrInvalidRule) || errors.Is(err, ErrNoRules)
}

// IsNoMatch reports whether err indicates that no signature matched
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// IsNotAllowed reports whether err indicates a disallowed file type
func IsNotAllowed(err error) bool {
	return errors.Is(err, ErrTypeNotAllowed)
}
