package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Quiz specific errors
	CodeQuizNotFound      ErrorCode = "QUIZ_NOT_FOUND"
	CodeUnsupportedSource ErrorCode = "UNSUPPORTED_SOURCE"
	CodeDuplicateResource ErrorCode = "DUPLICATE_RESOURCE"
	CodeSourceFetchError  ErrorCode = "SOURCE_FETCH_ERROR"
	CodeLLMServiceError   ErrorCode = "LLM_SERVICE_ERROR"
	CodeCorruptedData     ErrorCode = "CORRUPTED_DATA"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewUnsupportedSourceError(url string) *DomainError {
	return NewError(CodeUnsupportedSource, "Only Wikipedia URLs are allowed", nil).
		WithContext("url", url)
}

func NewDuplicateResourceError(url string) *DomainError {
	return NewError(CodeDuplicateResource,
		fmt.Sprintf("Quiz already generated for this URL: %s. Please check your history.", url), nil)
}

func NewSourceFetchError(url string, err error) *DomainError {
	return NewError(CodeSourceFetchError, "Failed to fetch source article", err).
		WithContext("url", url)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", err)
}

func NewCorruptedDataError(quizID string, err error) *DomainError {
	return NewError(CodeCorruptedData,
		fmt.Sprintf("Stored quiz data is corrupted for ID: %s", quizID), err)
}

// WithContext attaches a key/value pair surfaced in error response details
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ValidationError represents a single field-level validation failure,
// surfaced as the cause of an internal error when a record invariant breaks
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}
