package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Quiz specific errors
	ErrQuizNotFound ErrorCode = "QUIZ_NOT_FOUND"

	// Question source errors
	ErrSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	ErrNoResults         ErrorCode = "NO_RESULTS"

	// Auth errors
	ErrDuplicateEmail     ErrorCode = "DUPLICATE_EMAIL"
	ErrInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
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
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewSourceUnavailableError(err error) *DomainError {
	return NewError(ErrSourceUnavailable, "Failed to fetch questions from OpenTriviaDB", err)
}

func NewNoResultsError() *DomainError {
	return NewError(ErrNoResults, "OpenTriviaDB returned no results for the given parameters", nil)
}

func NewDuplicateEmailError(email string) *DomainError {
	return NewError(ErrDuplicateEmail, fmt.Sprintf("Email is already registered: %s", email), nil)
}

func NewInvalidCredentialsError() *DomainError {
	return NewError(ErrInvalidCredentials, "Invalid email or password", nil)
}
