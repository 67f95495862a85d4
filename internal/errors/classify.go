package errors

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE class 23: integrity constraint violation (fk, unique, not null, check)
const integrityViolationClass = "23"

// walks the chain from the outside in and returns the kind of the first error
// that is recognized, that error, and how many wrappers sit above it. unknown
// errors come back as (KindUnknown, err, 0).
func classify(err error) (Kind, error, int) {
	node := err

	for depth := 0; node != nil && depth < maxCauseDepth; depth++ {
		if kind := kindOf(node); kind != KindUnknown {
			return kind, node, depth
		}

		node = cause(node)
	}

	return KindUnknown, err, 0
}

// recognizes a single error value, without looking at what it wraps
func kindOf(err error) Kind {
	switch e := err.(type) {
	case *Error:
		// field errors only come from the validator
		if e.Kind <= KindUnknown || e.Kind >= kindCount || e.Kind == KindFieldValidation {
			return KindUnknown
		}

		return e.Kind
	case validator.ValidationErrors:
		if len(e) > 0 {
			return KindFieldValidation
		}
	case *json.SyntaxError, *json.UnmarshalTypeError, *http.MaxBytesError:
		return KindMalformedRequest
	case *pgconn.PgError:
		if strings.HasPrefix(e.Code, integrityViolationClass) {
			return KindIntegrityViolation
		}
	}

	if err == pgx.ErrNoRows { //nolint:errorlint // chain is walked by classify
		return KindResourceNotFound
	}

	return KindUnknown
}
