package core

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the failures a command pipeline can render
type Kind int

const (
	KindGeneric Kind = iota
	KindMissingParameter
	KindNotANumber
	KindNotFound
	KindFieldValidation
)

func (k Kind) String() string {
	switch k {
	case KindMissingParameter:
		return "missing_parameter"
	case KindNotANumber:
		return "not_a_number"
	case KindNotFound:
		return "not_found"
	case KindFieldValidation:
		return "field_validation"
	default:
		return "generic"
	}
}

// Error is the tagged error returned by validation, lookup and repository calls
type Error struct {
	Kind     Kind
	Param    string   // missing_parameter, not_a_number
	ID       ID       // not_found
	Messages []string // field_validation, one per violated rule
	err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingParameter:
		return fmt.Sprintf("missing parameter <%s>", e.Param)
	case KindNotANumber:
		return fmt.Sprintf("value of parameter <%s> is not a number", e.Param)
	case KindNotFound:
		return fmt.Sprintf("no quiz for id=%d", e.ID)
	case KindFieldValidation:
		return "invalid quiz: " + strings.Join(e.Messages, "; ")
	default:
		if e.err != nil {
			return e.err.Error()
		}
		return "unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is matches errors of the same kind, so errors.Is(err, &Error{Kind: KindNotFound}) works
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func ErrMissingParameter(param string) *Error {
	return &Error{Kind: KindMissingParameter, Param: param}
}

func ErrNotANumber(param string, cause error) *Error {
	return &Error{Kind: KindNotANumber, Param: param, err: cause}
}

func ErrNotFound(id ID) *Error {
	return &Error{Kind: KindNotFound, ID: id}
}

func ErrFieldValidation(messages []string) *Error {
	return &Error{Kind: KindFieldValidation, Messages: messages}
}

func ErrGeneric(err error) *Error {
	return &Error{Kind: KindGeneric, err: err}
}

// Convert returns err as a tagged error, wrapping foreign errors as generic failures
func Convert(err error) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return ErrGeneric(err)
	}
	return e
}

// KindOf reports the kind of err, or KindGeneric for foreign errors
func KindOf(err error) Kind {
	return Convert(err).Kind
}
