package errs

import (
	"errors"
	"fmt"
)

// Kind classifies every failure that reaches a workflow boundary.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindTransport  Kind = "transport"
	KindServer     Kind = "server"
)

func (k Kind) String() string {
	return string(k)
}

// Error is the tagged result error handed to the view layer.
// Message is empty when the server gave no readable reason. StatusCode is zero
// when no response was received.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Field      string
	err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("%s error", e.Kind)
		if e.StatusCode != 0 {
			msg = fmt.Sprintf("%s error (status %d)", e.Kind, e.StatusCode)
		}
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func Validation(field, msg string) error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

func Auth(status int, msg string, cause error) error {
	return &Error{Kind: KindAuth, StatusCode: status, Message: msg, err: cause}
}

func Transport(msg string, cause error) error {
	return &Error{Kind: KindTransport, Message: msg, err: cause}
}

func Server(status int, msg string, cause error) error {
	return &Error{Kind: KindServer, StatusCode: status, Message: msg, err: cause}
}

// WithMessage keeps kind, status and cause but replaces the user-facing message.
func WithMessage(err error, msg string) error {
	e, ok := As(err)
	if !ok {
		return &Error{Kind: KindServer, Message: msg, err: err}
	}
	return &Error{Kind: e.Kind, StatusCode: e.StatusCode, Field: e.Field, Message: msg, err: err}
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.StatusCode
	}
	return 0
}

// Message returns the user-facing text of err, falling back when err carries none.
func Message(err error, fallback string) string {
	if e, ok := As(err); ok && e.Message != "" {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return fallback
}
