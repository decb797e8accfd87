// Package fault defines the failure kinds a golden-model run can end with.
//
// SourceNotFound and MalformedLiteral are fatal. EmptyResult is a warning:
// the loader finished without error but produced nothing, and the caller
// decides whether the run can continue.
package fault

import (
	stderrors "errors"
	"fmt"
)

// Kind tags an Error.
type Kind int

const (
	SourceNotFound Kind = iota + 1
	MalformedLiteral
	EmptyResult
)

func (k Kind) String() string {
	switch k {
	case SourceNotFound:
		return "SourceNotFound"
	case MalformedLiteral:
		return "MalformedLiteral"
	case EmptyResult:
		return "EmptyResult"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a tagged failure. Source and Line locate it when known; Line is
// 1-based and zero when not applicable.
type Error struct {
	Kind   Kind
	Source string
	Line   int
	Token  string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()

	switch {
	case e.Source != "" && e.Line > 0:
		msg += fmt.Sprintf(" in %s line %d", e.Source, e.Line)
	case e.Source != "":
		msg += " in " + e.Source
	}

	if e.Token != "" {
		msg += fmt.Sprintf(": %q", e.Token)
	}

	if e.Msg != "" {
		msg += ": " + e.Msg
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether the run must stop.
func (e *Error) Fatal() bool {
	return e.Kind != EmptyResult
}

// NotFound creates a SourceNotFound error for the named source.
func NotFound(source string, err error) *Error {
	return &Error{Kind: SourceNotFound, Source: source, Err: err}
}

// Malformed creates a MalformedLiteral error for a token.
func Malformed(token, msg string) *Error {
	return &Error{Kind: MalformedLiteral, Token: token, Msg: msg}
}

// Empty creates an EmptyResult warning.
func Empty(source, msg string) *Error {
	return &Error{Kind: EmptyResult, Source: source, Msg: msg}
}

// At returns a copy of err located at the given source and line. Errors that
// are not *Error are returned unchanged.
func At(err error, source string, line int) error {
	var fe *Error
	if !stderrors.As(err, &fe) {
		return err
	}

	located := *fe
	located.Source = source
	located.Line = line

	return &located
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var fe *Error
	if stderrors.As(err, &fe) {
		return fe.Kind
	}

	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsWarning reports whether err is only an EmptyResult warning.
func IsWarning(err error) bool {
	return Is(err, EmptyResult)
}
