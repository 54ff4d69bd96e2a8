package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeNotAuthenticated   = "NOT_AUTHENTICATED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeFoodNotFound       = "FOOD_NOT_FOUND"
	ErrCodeCartLineNotFound   = "CART_LINE_NOT_FOUND"
	ErrCodeCartEmpty          = "CART_EMPTY"
	ErrCodePaymentFailed      = "PAYMENT_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotAuthenticated   = NewDomainError(ErrCodeNotAuthenticated, "No authenticated user for this operation")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Email or password is incorrect")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User record not found")
	ErrFoodNotFound       = NewDomainError(ErrCodeFoodNotFound, "Food item not found")
	ErrCartLineNotFound   = NewDomainError(ErrCodeCartLineNotFound, "Cart line not found")
	ErrCartEmpty          = NewDomainError(ErrCodeCartEmpty, "Cart has no items to check out")
	ErrPaymentFailed      = NewDomainError(ErrCodePaymentFailed, "Payment could not be verified")
)
