package jsonapierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrIdentity indicates a resource without a usable type or id.
	ErrIdentity = errors.New("identity error")

	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrLinkNotFound indicates a named link is absent.
	ErrLinkNotFound = errors.New("link not found")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// IdentityError reports a resource object that lacks a resolvable,
// non-empty type or id. A single IdentityError invalidates the whole
// document view that contains the resource.
type IdentityError struct {
	// Section is the document member holding the resource ("data" or "included")
	Section string
	// Index is the position within Section, or -1 for a single primary resource
	Index int
	// Field is the identity member that failed ("type" or "id"), empty when
	// the record is not an object at all
	Field string
	// Type is the resource type, when it was resolvable
	Type string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IdentityError) Error() string {
	msg := "identity error"
	if e.Section != "" {
		msg += " in " + e.Section
		if e.Index >= 0 {
			msg += fmt.Sprintf("[%d]", e.Index)
		}
	}
	if e.Type != "" {
		msg += fmt.Sprintf(" (type %q)", e.Type)
	}
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IdentityError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IdentityError) Is(target error) bool {
	return target == ErrIdentity
}

// ParseError represents a failure to decode a JSON:API document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LinkError is returned when a link is requested by a relation name that
// the links object does not carry.
type LinkError struct {
	// Rel is the link relation name that was requested
	Rel string
}

// Error returns a human-readable error message.
func (e *LinkError) Error() string {
	if e.Rel == "" {
		return "link not found"
	}
	return fmt.Sprintf("link not found: %q", e.Rel)
}

// Is reports whether target matches this error type.
func (e *LinkError) Is(target error) bool {
	return target == ErrLinkNotFound
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "document_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
