// Package errors provides structured error handling for flowlayout tools.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration loading or resolution failure.
	KindConfig
	// KindParsing indicates a scene document that could not be decoded.
	KindParsing
	// KindValidation indicates a decoded document with invalid values.
	KindValidation
	// KindRender indicates a failure writing rendered output.
	KindRender
	// KindWatch indicates a file watching failure.
	KindWatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindValidation:
		return "validation"
	case KindRender:
		return "render"
	case KindWatch:
		return "watch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FlowError represents a structured error raised around a layout run.
type FlowError struct {
	// Op is the operation that failed (e.g., "scene.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New wraps err with an operation and kind. It returns nil when err is nil.
func New(op string, kind ErrorKind, err error) *FlowError {
	if err == nil {
		return nil
	}
	return &FlowError{Op: op, Kind: kind, Err: err}
}

// WithPath wraps err with an operation, kind and file path. It returns nil
// when err is nil.
func WithPath(op string, kind ErrorKind, path string, err error) *FlowError {
	if err == nil {
		return nil
	}
	return &FlowError{Op: op, Kind: kind, Path: path, Err: err}
}

func (e *FlowError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "watch.Watcher.Run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode a document.
type ParseError struct {
	// Format is the document format ("yaml", "toml").
	Format string
	// Line is the 1-based line of the failure, or 0 when unknown.
	Line int
	// Err is the decoder error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s at line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

// Add records one failure.
func (e *ValidationError) Add(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// Err returns e if any failure was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// ErrorHandler receives errors reported by flowlayout tools.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FlowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
