package model

// ErrorKind classifies a domain error so the HTTP layer can pick a status.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindBadRequest
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// DomainError is an error raised by business logic.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingFields   = NewDomainError(KindValidation, "Missing required fields")
	ErrProductNotFound = NewDomainError(KindNotFound, "Product not found")
	ErrInvalidBody     = NewDomainError(KindBadRequest, "Invalid request body")
	ErrRouteNotFound   = NewDomainError(KindNotFound, "Not found")
)
