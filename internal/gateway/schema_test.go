package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"vendor":   map[string]any{"type": "string"},
			"date":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"total":    map[string]any{"type": "number"},
			"paid":     map[string]any{"type": "boolean"},
			"address":  map[string]any{"type": "object"},
			"line_ids": map[string]any{"type": "array"},
		},
		"required": []any{"vendor", "total"},
	}
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := invoiceSchema()

	ok := []byte(`{"vendor":"Acme","date":"2026-01-15","total":99.5,"paid":true,"address":{"city":"Berlin"},"line_ids":[1,2]}`)
	require.NoError(t, ValidateAgainstSchema(schema, ok))

	// declared types must hold for every field present
	badType := []byte(`{"vendor":"Acme","total":"99.5"}`)
	assert.Error(t, ValidateAgainstSchema(schema, badType))

	badDate := []byte(`{"vendor":"Acme","total":1,"date":"15.01.2026"}`)
	assert.Error(t, ValidateAgainstSchema(schema, badDate))

	missingRequired := []byte(`{"vendor":"Acme"}`)
	assert.Error(t, ValidateAgainstSchema(schema, missingRequired))
}

func TestLoosenRequired(t *testing.T) {
	schema := invoiceSchema()
	loose := LoosenRequired(schema)

	// the model is told to omit fields it cannot find, required or not
	assert.NoError(t, ValidateAgainstSchema(loose, []byte(`{"vendor":"Acme"}`)))
	assert.NoError(t, ValidateAgainstSchema(loose, []byte(`{}`)))
	// type checks still apply
	assert.Error(t, ValidateAgainstSchema(loose, []byte(`{"total":"abc"}`)))
	// original untouched
	assert.Error(t, ValidateAgainstSchema(schema, []byte(`{"vendor":"Acme"}`)))
}
