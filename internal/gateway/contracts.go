package gateway

import "context"

// Part is one element of a multimodal request: either text or an inline file.
type Part struct {
	Text     string `json:"text,omitempty"`
	Data     []byte `json:"-"`
	MIME     string `json:"mime,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// IsFile reports whether the part carries document bytes rather than text.
func (p Part) IsFile() bool { return len(p.Data) > 0 }

// Request is a single multimodal inference call: one system prompt, the target
// schema the output must conform to, and the ordered content parts.
type Request struct {
	Model        string
	SystemPrompt string
	Parts        []Part
	Schema       map[string]any
	Temperature  float32
}

// StreamChunk carries the model text accumulated so far. The stream is lazy,
// finite, and not restartable; a new call must be issued to retry.
type StreamChunk struct {
	// Text is the full accumulated output up to this chunk, not a delta.
	Text string
	Done bool
	Err  error
}

// Gateway wraps the external multimodal inference service.
type Gateway interface {
	// Complete issues one non-streaming call and returns the raw model text.
	Complete(ctx context.Context, req Request) (string, error)
	// Stream issues a streaming call. The channel is closed after the final
	// chunk (Done=true) or an error chunk; consumers must drain it.
	Stream(ctx context.Context, req Request) (<-chan StreamChunk, error)
}
