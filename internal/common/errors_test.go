package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil is completed", nil, OutcomeCompleted},
		{"context canceled", context.Canceled, OutcomeCancelled},
		{"wrapped cancellation", fmt.Errorf("stream: %w", context.Canceled), OutcomeCancelled},
		{"deadline exceeded", context.DeadlineExceeded, OutcomeCancelled},
		{"validation rejection", fmt.Errorf("gate: %w", ErrValidationRejected), OutcomeRejected},
		{"not found", ErrNotFound, OutcomeFailed},
		{"rate limited", ErrRateLimited, OutcomeFailed},
		{"plain error", errors.New("boom"), OutcomeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(ErrNotFound))
	assert.False(t, IsRetryable(ErrValidationRejected))
	assert.False(t, IsRetryable(fmt.Errorf("parse: %w", ErrInvalidModelOutput)))
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(errors.New("connection reset")))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewAppError("DB_ERROR", "query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_ERROR")
	assert.Contains(t, err.Error(), "query failed")
}
