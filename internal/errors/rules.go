package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// MessageSource resolves localized user messages.
type MessageSource interface {
	Message(locale language.Tag, key string, args ...string) (string, error)
	FieldMessage(locale language.Tag, fe validator.FieldError) (string, error)
}

// rule describes how one kind is answered. key is resolved through the
// MessageSource; developer extracts the diagnostic text from the matched error.
// With keepContext set, an error matched below wrappers is described through
// the outermost one, so the context those wrappers added is not lost.
type rule struct {
	status      int
	key         string
	developer   func(err error) string
	keepContext bool
}

// indexed by Kind; KindUnknown and KindFieldValidation have no single-entry rule
var rules = [kindCount]rule{
	KindMalformedRequest: {
		status:      http.StatusBadRequest,
		key:         KeyInvalidMessage,
		developer:   causeOrSelf,
		keepContext: true,
	},
	KindFieldValidation: {
		status: http.StatusBadRequest,
	},
	KindResourceNotFound: {
		status:      http.StatusNotFound,
		key:         KeyResourceNotFound,
		developer:   causeOrSelf,
		keepContext: true,
	},
	KindIntegrityViolation: {
		status:    http.StatusBadRequest,
		key:       KeyResourceOperationNotAllowed,
		developer: rootCauseMessage,
	},
	KindEntityInvalid: {
		status:      http.StatusBadRequest,
		key:         KeyPersonNonexistentOrInactive,
		developer:   causeOrSelf,
		keepContext: true,
	},
}

// Normalize turns err into a status and a list of error entries. It returns
// (nil, nil) when err is not of a recognized kind, leaving the response to the
// caller's default handling. A non-nil error means a message could not be
// resolved.
func Normalize(err error, locale language.Tag, messages MessageSource) (*Response, error) {
	if err == nil {
		return nil, nil
	}

	kind, matched, depth := classify(err)

	switch kind {
	case KindUnknown:
		return nil, nil
	case KindFieldValidation:
		fieldErrors, ok := matched.(validator.ValidationErrors)
		if !ok {
			return nil, nil
		}

		return normalizeFields(fieldErrors, locale, messages)
	}

	r := rules[kind]

	developerMessage := r.developer(matched)
	if r.keepContext && depth > 0 {
		developerMessage = describe(err)
	}

	userMessage, resolveErr := messages.Message(locale, r.key)
	if resolveErr != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", r.key, resolveErr)
	}

	return &Response{
		Status: r.status,
		Body: []ErrorEntry{{
			UserMessage:      userMessage,
			DeveloperMessage: developerMessage,
		}},
	}, nil
}

// one entry per field error, in the order the validator reported them
func normalizeFields(fieldErrors validator.ValidationErrors, locale language.Tag, messages MessageSource) (*Response, error) {
	body := make([]ErrorEntry, 0, len(fieldErrors))

	for _, fe := range fieldErrors {
		userMessage, err := messages.FieldMessage(locale, fe)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve field message for %q: %w", fe.Namespace(), err)
		}

		body = append(body, ErrorEntry{
			UserMessage:      userMessage,
			DeveloperMessage: describeField(fe),
		})
	}

	return &Response{
		Status: rules[KindFieldValidation].status,
		Body:   body,
	}, nil
}

// full descriptor of a field error: object, field, rejected value and constraint
func describeField(fe validator.FieldError) string {
	constraint := fe.Tag()
	if fe.Param() != "" {
		constraint += "=" + fe.Param()
	}

	return fmt.Sprintf("Field error in object '%s' on field '%s': rejected value [%v]; constraint [%s]",
		objectName(fe), fe.Field(), fe.Value(), constraint)
}

// struct name from the namespace, e.g. "PersonRequest.address.city" -> "PersonRequest"
func objectName(fe validator.FieldError) string {
	object, _, _ := strings.Cut(fe.StructNamespace(), ".")

	return object
}
