package validator

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/gateway"
)

// Verdict is the validation gate's answer.
type Verdict struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason,omitempty"`
}

const failOpenReason = "validation check failed, proceeding"

const systemPrompt = "You are a document type validator. " +
	"Judge whether the attached document matches the expected document type described by the instructions. " +
	"Return ONLY JSON: {\"is_valid\": true|false, \"reason\": \"short explanation\"}. " +
	"Set is_valid to false only when the document clearly does not match."

// verdictSchema constrains and locally validates the model's answer.
var verdictSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"is_valid": map[string]any{"type": "boolean"},
		"reason":   map[string]any{"type": "string"},
	},
	"required": []any{"is_valid"},
}

// Validator is the opt-in preflight gate run before a full extraction.
type Validator struct {
	gw  gateway.Gateway
	log *slog.Logger
}

func New(gw gateway.Gateway, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{gw: gw, log: logger}
}

// Validate asks the model a yes/no question about document-type fit.
//
// Policy: a broken validator must never block all extraction. Any gateway or
// parse error fails OPEN and lets the extraction proceed. Cancellation is the
// one exception - a stopped caller is not a broken validator, so the context
// error propagates.
func (v *Validator) Validate(ctx context.Context, instructions string, fileBytes []byte, filename, model string) (Verdict, error) {
	if strings.TrimSpace(instructions) == "" {
		return Verdict{IsValid: true}, nil
	}

	req := gateway.Request{
		Model:        model,
		SystemPrompt: systemPrompt,
		Parts: []gateway.Part{
			{Text: "Expected document type:\n" + instructions},
			{Data: fileBytes, MIME: constants.MIMEForFilename(filename), Filename: filename},
		},
		Schema: verdictSchema,
	}

	raw, err := v.gw.Complete(ctx, req)
	if err != nil {
		if common.IsCancellation(err) {
			return Verdict{}, err
		}
		v.log.Warn("validator.check_failed_open", "filename", filename, "error", err)
		return Verdict{IsValid: true, Reason: failOpenReason}, nil
	}

	repaired, err := gateway.RepairToJSON(raw)
	if err != nil {
		v.log.Warn("validator.unparseable_verdict_failed_open", "filename", filename, "error", err)
		return Verdict{IsValid: true, Reason: failOpenReason}, nil
	}
	if err := gateway.ValidateAgainstSchema(verdictSchema, repaired); err != nil {
		v.log.Warn("validator.bad_verdict_shape_failed_open", "filename", filename, "error", err)
		return Verdict{IsValid: true, Reason: failOpenReason}, nil
	}

	var verdict Verdict
	if err := json.Unmarshal(repaired, &verdict); err != nil {
		v.log.Warn("validator.verdict_decode_failed_open", "filename", filename, "error", err)
		return Verdict{IsValid: true, Reason: failOpenReason}, nil
	}
	if !verdict.IsValid && verdict.Reason == "" {
		verdict.Reason = "document does not match the expected type"
	}

	v.log.Info("validator.verdict", "filename", filename, "is_valid", verdict.IsValid, "reason", verdict.Reason)
	return verdict, nil
}
