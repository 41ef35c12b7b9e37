package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DocumentType is the extraction contract a Document is processed against.
type DocumentType struct {
	ID                     uuid.UUID       `json:"id"`
	Name                   string          `json:"name"`
	Schema                 json.RawMessage `json:"schema"`
	ValidationInstructions *string         `json:"validation_instructions,omitempty"`
	ModelName              string          `json:"model_name"`
	ProviderName           string          `json:"provider_name"`
	SystemPrompt           *string         `json:"system_prompt,omitempty"`
	WebhookURL             *string         `json:"webhook_url,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// SchemaMap decodes the stored JSON schema into a generic map for prompt
// building and local validation.
func (dt *DocumentType) SchemaMap() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(dt.Schema, &m); err != nil {
		return nil, err
	}
	return m, nil
}
