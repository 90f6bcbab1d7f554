// Package apperr defines the error kinds the service layer reports:
// validation failures, duplicate names, missing records, store failures and
// bad credentials. Handlers map kinds onto HTTP statuses; the message is
// safe to show to the user.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicateName
	KindNotFound
	KindStore
	KindAuth
)

// Error carries an error kind plus a human-readable message. Step names
// which stage of a multi-step workflow failed (e.g. "delete-enquiry"), so
// callers can report partially-done actions.
type Error struct {
	Kind    Kind
	Message string
	Step    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// StoreStep marks a store failure with the workflow step that hit it.
func StoreStep(step, message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Step: step, Err: err}
}

// KindOf extracts the kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StepOf extracts the failed workflow step from an error chain, "" if none.
func StepOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Step
	}
	return ""
}
