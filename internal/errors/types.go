package errors

// ErrorResponse is the generic body used outside the normalized error path
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "unauthorized", "server_error")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// ErrorEntry is one normalized error: a localized message for the end user and
// technical detail for whoever is integrating against the API.
type ErrorEntry struct {
	UserMessage      string `json:"user_message"`
	DeveloperMessage string `json:"developer_message"`
}

// Response is the outcome of normalizing a recognized error.
type Response struct {
	Status int
	Body   []ErrorEntry
}

// Kind is the closed set of error categories the normalizer knows how to answer.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedRequest
	KindFieldValidation
	KindResourceNotFound
	KindIntegrityViolation
	KindEntityInvalid

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:            "unknown",
	KindMalformedRequest:   "malformed_request",
	KindFieldValidation:    "validation_error",
	KindResourceNotFound:   "not_found",
	KindIntegrityViolation: "operation_not_allowed",
	KindEntityInvalid:      "person_nonexistent_or_inactive",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return kindNames[KindUnknown]
	}

	return kindNames[k]
}

// message keys resolved through the MessageSource
const (
	KeyInvalidMessage              = "invalid.message"
	KeyResourceNotFound            = "resource.not.found"
	KeyResourceOperationNotAllowed = "resource.operation.not.allowed"
	KeyPersonNonexistentOrInactive = "person.nonexistent.or.inactive"
)

// standard error codes for the default path
const (
	CodeUnauthorized    = "unauthorized"
	CodeServerError     = "server_error"
	CodeTooManyRequests = "too_many_requests"
)
