package gateway

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

const defaultSystemPrompt = "You are a document data extraction engine. " +
	"You read the attached document and return the structured data it contains."

// BuildSystemPrompt composes the extraction system message: the DocumentType's
// own prompt (or a default), followed by the output contract the rest of the
// pipeline depends on.
func BuildSystemPrompt(custom string) string {
	head := strings.TrimSpace(custom)
	if head == "" {
		head = defaultSystemPrompt
	}
	parts := []string{
		head,
		"Return ONLY JSON that matches the provided JSON Schema.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Never output null and never guess. If a field cannot be found in the document, omit it entirely, even if the schema marks it required.",
		"Do not wrap the JSON in markdown fences or add commentary.",
	}
	return strings.Join(parts, " ")
}

// SchemaMessage renders the target schema as the dedicated schema system
// message appended after the user content.
func SchemaMessage(schema map[string]any) string {
	return "JSON Schema:\n" + mustJSON(schema)
}

// DataURL encodes file bytes as a data URL for inline transport to the
// inference provider.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
