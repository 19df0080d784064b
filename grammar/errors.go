package grammar

import (
	"errors"
	"fmt"
)

// Sentinel errors for template compilation.
var (
	// ErrUnknownKind indicates an instance referencing a kind that is not
	// in the catalog.
	ErrUnknownKind = errors.New("unknown token kind")
	// ErrEmptyTemplate indicates a template with no entries.
	ErrEmptyTemplate = errors.New("template has no entries")
	// ErrEmptyEntry indicates an entry with neither a kind nor a literal.
	ErrEmptyEntry = errors.New("entry has no kind and no literal")
	// ErrBadWidth indicates a spinner width outside the kind's bounds.
	ErrBadWidth = errors.New("width outside kind bounds")
	// ErrBadRange indicates a range-spinner pair with min greater than max.
	ErrBadRange = errors.New("range min greater than max")
	// ErrBadOption indicates a configured value missing from the kind's
	// option list.
	ErrBadOption = errors.New("value not in kind options")
)

// CompileError reports the template entry that failed to compile. A caller
// receiving a CompileError must not use any partial pattern.
type CompileError struct {
	// Index is the failing entry's position in the template, or -1 when
	// the assembled composite itself failed to compile.
	Index int
	// Kind is the failing entry's kind name, empty for literal entries.
	Kind string
	// Err is the underlying cause.
	Err error
}

// Error returns the error string.
func (e *CompileError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("compile template: %v", e.Err)
	}
	if e.Kind == "" {
		return fmt.Sprintf("compile entry %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("compile entry %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileErr(index int, kind string, err error) *CompileError {
	return &CompileError{Index: index, Kind: kind, Err: err}
}
