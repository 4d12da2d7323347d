package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain.
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Assessment specific errors
	CodeUnknownQuestion       ErrorCode = "UNKNOWN_QUESTION"
	CodeInvalidAnswer         ErrorCode = "INVALID_ANSWER"
	CodeInvalidCategory       ErrorCode = "INVALID_CATEGORY"
	CodeInsufficientQuestions ErrorCode = "INSUFFICIENT_QUESTIONS"
	CodeModelUnavailable      ErrorCode = "MODEL_UNAVAILABLE"
	CodeResultNotFound        ErrorCode = "RESULT_NOT_FOUND"
)

// DomainError represents a domain-specific error.
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

// MarshalJSON implements the json.Marshaler interface.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError.
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext attaches key/value context surfaced in error responses.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnknownQuestionError(questionID int64) *DomainError {
	return NewError(CodeUnknownQuestion,
		fmt.Sprintf("response references unknown question id %d", questionID), nil).
		WithContext("question_id", questionID)
}

func NewInvalidAnswerError(answer string) *DomainError {
	return NewError(CodeInvalidAnswer,
		fmt.Sprintf("answer %q is not one of A, B, C, D", answer), nil)
}

func NewInvalidCategoryError(category string) *DomainError {
	return NewError(CodeInvalidCategory, fmt.Sprintf("invalid category: %s", category), nil)
}

func NewInsufficientQuestionsError(category Category, requested, available int) *DomainError {
	return NewError(CodeInsufficientQuestions,
		fmt.Sprintf("category %s has %d questions, %d requested", category, available, requested), nil).
		WithContext("category", string(category))
}

func NewModelUnavailableError(cause error) *DomainError {
	return NewError(CodeModelUnavailable, "trauma model is unavailable", cause)
}

func NewResultNotFoundError(resultID string) *DomainError {
	return NewError(CodeResultNotFound,
		fmt.Sprintf("no evaluation result found for id %s", resultID), nil)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of field validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max),
	}
}
