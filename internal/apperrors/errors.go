// Package apperrors defines the error taxonomy shared by all components.
//
// Every failure surfaced to the user belongs to one of four kinds:
// authentication, validation, network, or data processing. Components wrap
// causes with %w so callers can classify an error chain with KindOf and
// render it with UserMessage.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for presentation and handling.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuthentication
	KindValidation
	KindNetwork
	KindDataProcessing
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindDataProcessing:
		return "data_processing"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes two taxonomy errors of the same kind match under errors.Is,
// so sentinel-style checks like errors.Is(err, apperrors.Validation("x"))
// work without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func Authentication(format string, args ...any) *Error {
	return &Error{Kind: KindAuthentication, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Network(format string, args ...any) *Error {
	return &Error{Kind: KindNetwork, Message: fmt.Sprintf(format, args...)}
}

func DataProcessing(format string, args ...any) *Error {
	return &Error{Kind: KindDataProcessing, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a taxonomy error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf walks the error chain and returns the kind of the first taxonomy
// error found, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage maps an error to the one-line message shown to the user.
// Unknown kinds fall back to the raw error text.
func UserMessage(err error) string {
	switch KindOf(err) {
	case KindAuthentication:
		return "Authentication failed. Please check your API key."
	case KindNetwork:
		return "Network error. Please check your internet connection."
	case KindValidation:
		return "Invalid input. Please check the provided parameters."
	case KindDataProcessing:
		return "Error processing data. Please try again."
	default:
		if err == nil {
			return ""
		}
		return err.Error()
	}
}
