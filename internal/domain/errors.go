package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
)

// Input errors. The pipeline never fails on well-formed text; these cover
// the one malformed-input class that must fail fast instead of producing a
// misleading zero-valued analysis.
var (
	ErrEmptyDocument   = NewDomainError(ErrCodeInvalidInput, "document content is empty")
	ErrInvalidEncoding = NewDomainError(ErrCodeInvalidInput, "document content is not valid UTF-8")
	ErrDocumentTooLong = NewDomainError(ErrCodeValidation, "document content exceeds the configured size limit")
)

// Validation errors
var (
	ErrInvalidClauseCategory = NewDomainError(ErrCodeValidation, "invalid clause category")
	ErrInvalidRiskLevel      = NewDomainError(ErrCodeValidation, "invalid risk level")
	ErrInvalidSeverity       = NewDomainError(ErrCodeValidation, "invalid severity")
	ErrInvalidCostFrequency  = NewDomainError(ErrCodeValidation, "invalid cost frequency")
	ErrInvalidClauseSpan     = NewDomainError(ErrCodeValidation, "clause span offsets are out of order")
)
