package validator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/gateway"
)

// fakeGateway satisfies gateway.Gateway for testing.
type fakeGateway struct {
	completeFunc func(ctx context.Context, req gateway.Request) (string, error)
	lastReq      gateway.Request
}

func (f *fakeGateway) Complete(ctx context.Context, req gateway.Request) (string, error) {
	f.lastReq = req
	return f.completeFunc(ctx, req)
}

func (f *fakeGateway) Stream(_ context.Context, _ gateway.Request) (<-chan gateway.StreamChunk, error) {
	panic("stream not used by validator")
}

func TestValidateEmptyInstructionsSkipsCall(t *testing.T) {
	gw := &fakeGateway{completeFunc: func(context.Context, gateway.Request) (string, error) {
		t.Fatal("gateway must not be called")
		return "", nil
	}}
	v := New(gw, nil)

	verdict, err := v.Validate(context.Background(), "  ", []byte("x"), "a.pdf", "m")
	require.NoError(t, err)
	assert.True(t, verdict.IsValid)
}

func TestValidateRejects(t *testing.T) {
	gw := &fakeGateway{completeFunc: func(context.Context, gateway.Request) (string, error) {
		return `{"is_valid": false, "reason": "mismatch"}`, nil
	}}
	v := New(gw, nil)

	verdict, err := v.Validate(context.Background(), "an invoice", []byte("x"), "a.pdf", "m")
	require.NoError(t, err)
	assert.False(t, verdict.IsValid)
	assert.Equal(t, "mismatch", verdict.Reason)
	assert.Equal(t, "application/pdf", gw.lastReq.Parts[1].MIME)
}

func TestValidateAccepts(t *testing.T) {
	gw := &fakeGateway{completeFunc: func(context.Context, gateway.Request) (string, error) {
		return "```json\n{\"is_valid\": true}\n```", nil
	}}
	v := New(gw, nil)

	verdict, err := v.Validate(context.Background(), "an invoice", []byte("x"), "a.png", "m")
	require.NoError(t, err)
	assert.True(t, verdict.IsValid)
}

func TestValidateFailsOpenOnGatewayError(t *testing.T) {
	gw := &fakeGateway{completeFunc: func(context.Context, gateway.Request) (string, error) {
		return "", errors.New("provider exploded")
	}}
	v := New(gw, nil)

	verdict, err := v.Validate(context.Background(), "an invoice", []byte("x"), "a.pdf", "m")
	require.NoError(t, err)
	assert.True(t, verdict.IsValid)
	assert.Equal(t, failOpenReason, verdict.Reason)
}

func TestValidateFailsOpenOnGarbageOutput(t *testing.T) {
	gw := &fakeGateway{completeFunc: func(context.Context, gateway.Request) (string, error) {
		return "I do not know.", nil
	}}
	v := New(gw, nil)

	verdict, err := v.Validate(context.Background(), "an invoice", []byte("x"), "a.pdf", "m")
	require.NoError(t, err)
	assert.True(t, verdict.IsValid)
	assert.Equal(t, failOpenReason, verdict.Reason)
}

func TestValidatePropagatesCancellation(t *testing.T) {
	gw := &fakeGateway{completeFunc: func(ctx context.Context, _ gateway.Request) (string, error) {
		return "", context.Canceled
	}}
	v := New(gw, nil)

	_, err := v.Validate(context.Background(), "an invoice", []byte("x"), "a.pdf", "m")
	assert.ErrorIs(t, err, context.Canceled)
}
