// Package errors provides structured error handling for keyframe documents
// and tools.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDecode indicates malformed document input.
	KindDecode
	// KindEncode indicates a document could not be written.
	KindEncode
	// KindSchema indicates a document failed schema validation.
	KindSchema
	// KindVersion indicates an unsupported document version.
	KindVersion
	// KindCommand indicates invalid command-line usage.
	KindCommand
	// KindConfig indicates an unreadable or invalid configuration file.
	KindConfig
	// KindLookup indicates a named track or keyframe was not found.
	KindLookup
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindSchema:
		return "schema"
	case KindVersion:
		return "version"
	case KindCommand:
		return "command"
	case KindConfig:
		return "config"
	case KindLookup:
		return "lookup"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// KeyframeError is a structured error raised at a document or tool boundary.
type KeyframeError struct {
	// Op is the operation that failed (e.g., "document.Decode").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path locates the failure: a file name, or a field path such as
	// "tracks[2].keyframes[0].mode".
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a KeyframeError for op with the given kind and cause. The
// caller's stack is recorded in StackTrace.
func New(op string, kind ErrorKind, err error) *KeyframeError {
	return &KeyframeError{Op: op, Kind: kind, Err: err, StackTrace: stack(3)}
}

// Errorf is New with a formatted cause.
func Errorf(op string, kind ErrorKind, format string, args ...any) *KeyframeError {
	return &KeyframeError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...), StackTrace: stack(3)}
}

// At returns a copy of e located at path.
func (e *KeyframeError) At(path string) *KeyframeError {
	c := *e
	c.Path = path
	return &c
}

// InFile returns a copy of e whose path is prefixed with file, giving
// locations such as "walk.yaml:tracks[0].keyframes[1].id".
func (e *KeyframeError) InFile(file string) *KeyframeError {
	if e.Path == "" {
		return e.At(file)
	}
	return e.At(file + ":" + e.Path)
}

func (e *KeyframeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KeyframeError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first KeyframeError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var ke *KeyframeError
	if stderrors.As(err, &ke) {
		return ke.Kind
	}
	return KindUnknown
}

// Is reports whether err's chain contains a KeyframeError of kind.
func Is(err error, kind ErrorKind) bool {
	for err != nil {
		var ke *KeyframeError
		if !stderrors.As(err, &ke) {
			return false
		}
		if ke.Kind == kind {
			return true
		}
		err = ke.Err
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.sample").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *KeyframeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
