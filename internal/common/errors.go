package common

import (
	"context"
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. These are the classification anchors the
// orchestrator and the HTTP layer branch on.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrValidationRejected = errors.New("document rejected by validation gate")
	ErrInvalidModelOutput = errors.New("model output is not valid JSON for the target schema")
	ErrRateLimited        = errors.New("inference provider rate limited")
	ErrDuplicateJob       = errors.New("document already has an active job")
	ErrDatabase           = errors.New("database error")
	ErrInternal           = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Outcome is the settlement classification both schedulers report.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeRejected  Outcome = "rejected"  // validation gate said no; terminal, not retryable
	OutcomeCancelled Outcome = "cancelled" // caller stopped the work; never a failure
	OutcomeFailed    Outcome = "failed"
)

// Classify maps an extraction error to a settlement outcome. Cancellation is
// detected before everything else so a stop request is never reported as a
// user-facing failure.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCompleted
	case IsCancellation(err):
		return OutcomeCancelled
	case errors.Is(err, ErrValidationRejected):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

// IsCancellation reports whether err stems from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsRetryable reports whether a caller may reasonably re-trigger the same
// extraction. NotFound, validation rejections, and unparseable model output are
// terminal for the attempt.
func IsRetryable(err error) bool {
	if err == nil || IsCancellation(err) {
		return false
	}
	return !errors.Is(err, ErrNotFound) &&
		!errors.Is(err, ErrValidationRejected) &&
		!errors.Is(err, ErrInvalidModelOutput)
}
