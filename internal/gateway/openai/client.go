package openai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/gateway"
)

// Client implements gateway.Gateway against an OpenAI-compatible
// chat/completions endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		// Timeout covers non-streaming calls; streaming reads are bounded by
		// the caller's context instead.
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

var _ gateway.Gateway = (*Client)(nil)

// Complete issues one non-streaming chat/completions call and returns the raw
// model text.
func (c *Client) Complete(ctx context.Context, req gateway.Request) (string, error) {
	rid := uuid.New().String()
	start := time.Now()
	body := c.buildBody(req, false)

	c.log.Info("gateway.complete.start", "req_id", rid, "model", body["model"], "parts", len(req.Parts))

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := gateway.SendJSON(ctx, c.httpClient, endpoint, body, c.headers(), c.log)
	if err != nil {
		c.log.Error("gateway.complete.http_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("gateway.complete.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("gateway.complete.no_choices", "req_id", rid, "raw", string(raw))
		return "", fmt.Errorf("no choices in response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	c.log.Info("gateway.complete.ok", "req_id", rid, "content_bytes", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

// Stream issues a streaming chat/completions call (SSE). Each chunk carries
// the accumulated text so far; the final chunk has Done set.
func (c *Client) Stream(ctx context.Context, req gateway.Request) (<-chan gateway.StreamChunk, error) {
	rid := uuid.New().String()
	body := c.buildBody(req, true)

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.headers() {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	// No client timeout here: a stream legitimately outlives Timeout. The
	// caller's context bounds it.
	streamClient := &http.Client{Transport: c.httpClient.Transport}
	resp, err := streamClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("status 429: %w", common.ErrRateLimited)
	}
	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("non-2xx status %d: %s", resp.StatusCode, string(raw))
	}

	c.log.Info("gateway.stream.start", "req_id", rid, "model", body["model"])

	out := make(chan gateway.StreamChunk)
	go func() {
		defer close(out)
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.log.Warn("gateway.stream.body_close_error", "req_id", rid, "error", err)
			}
		}()

		var acc strings.Builder
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if payload == "[DONE]" {
				break
			}

			var ev struct {
				Choices []struct {
					Delta struct {
						Content string `json:"content"`
					} `json:"delta"`
				} `json:"choices"`
			}
			if err := json.Unmarshal([]byte(payload), &ev); err != nil {
				c.log.Warn("gateway.stream.bad_event", "req_id", rid, "error", err)
				continue
			}
			if len(ev.Choices) == 0 || ev.Choices[0].Delta.Content == "" {
				continue
			}
			acc.WriteString(ev.Choices[0].Delta.Content)

			select {
			case out <- gateway.StreamChunk{Text: acc.String()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			// Context cancellation surfaces as a read error on the body.
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			c.log.Error("gateway.stream.read_error", "req_id", rid, "error", err)
			select {
			case out <- gateway.StreamChunk{Err: err}:
			case <-ctx.Done():
			}
			return
		}

		c.log.Info("gateway.stream.done", "req_id", rid, "content_bytes", acc.Len())
		select {
		case out <- gateway.StreamChunk{Text: acc.String(), Done: true}:
		case <-ctx.Done():
		}
	}()

	return out, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	if c.cfg.APIKey != "" {
		h["Authorization"] = "Bearer " + c.cfg.APIKey
	}
	return h
}

// buildBody renders the gateway request as a chat/completions payload: the
// system prompt, one user message carrying the multimodal parts, and the
// schema as a trailing system message.
func (c *Client) buildBody(req gateway.Request, stream bool) map[string]any {
	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	content := make([]map[string]any, 0, len(req.Parts))
	for _, p := range req.Parts {
		switch {
		case p.IsFile() && strings.HasPrefix(p.MIME, "image/"):
			content = append(content, map[string]any{
				"type":      "image_url",
				"image_url": map[string]any{"url": gateway.DataURL(p.MIME, p.Data)},
			})
		case p.IsFile():
			content = append(content, map[string]any{
				"type": "file",
				"file": map[string]any{
					"filename":  p.Filename,
					"file_data": gateway.DataURL(p.MIME, p.Data),
				},
			})
		default:
			content = append(content, map[string]any{"type": "text", "text": p.Text})
		}
	}

	messages := []map[string]any{
		{"role": "system", "content": req.SystemPrompt},
		{"role": "user", "content": content},
	}
	if req.Schema != nil {
		messages = append(messages, map[string]any{
			"role": "system", "content": gateway.SchemaMessage(req.Schema),
		})
	}

	body := map[string]any{
		"model":           model,
		"temperature":     req.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages":        messages,
	}
	if stream {
		body["stream"] = true
	}
	return body
}
