package errors

import (
	"fmt"
)

// Error tags a failure with the Kind the normalizer should answer it with.
// Err is the originating error, if any, and is what the developer message
// describes for kinds that report the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// request body could not be read or parsed
func Malformed(err error) *Error {
	return &Error{Kind: KindMalformedRequest, Message: "malformed request body", Err: err}
}

// a lookup or write by key matched no row
func NotFound(message string, err error) *Error {
	return &Error{Kind: KindResourceNotFound, Message: message, Err: err}
}

// a write was rejected by a storage integrity constraint
func IntegrityViolation(message string, err error) *Error {
	return &Error{Kind: KindIntegrityViolation, Message: message, Err: err}
}

// the referenced person does not exist or is not active
func PersonNonexistentOrInactive(personID int64, err error) *Error {
	return &Error{
		Kind:    KindEntityInvalid,
		Message: fmt.Sprintf("person %d is nonexistent or inactive", personID),
		Err:     err,
	}
}
