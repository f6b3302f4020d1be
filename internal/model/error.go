package model

// ErrorResponse is the standardised error payload returned by the API.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeStatusNotAllowed = "STATUS_NOT_ALLOWED"
	ErrCodeEmptySelection   = "EMPTY_SELECTION"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeUpdateInFlight   = "UPDATE_IN_FLIGHT"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeUpstreamFailure  = "UPSTREAM_FAILURE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidStatus    = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrStatusNotAllowed = NewDomainError(ErrCodeStatusNotAllowed, "Status is not selectable in this view")
	ErrEmptySelection   = NewDomainError(ErrCodeEmptySelection, "Please select at least one order")
	ErrUpdateInFlight   = NewDomainError(ErrCodeUpdateInFlight, "An update for this order is already in progress")
)
