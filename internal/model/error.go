package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeOrderRejected    = "ORDER_REJECTED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
)

// User-facing messages.
const (
	MsgProductNotFound = "Продукт не найден"
	MsgLoadFailed      = "Ошибка загрузки данных"
	MsgOrderFailed     = "Ошибка отправки заявки"
	MsgOrderAccepted   = "Заявка принята"
)

// Domain errors for business logic
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
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, MsgProductNotFound)
	ErrInvalidCategory = NewDomainError(ErrCodeInvalidCategory, "Unknown product category")
)
