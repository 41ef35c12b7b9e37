package openai

import "time"

// Config holds everything the OpenAI-compatible client needs. BaseURL should
// include the /v1 prefix; it works against any chat/completions-compatible
// endpoint (OpenAI, vLLM, LiteLLM, OpenRouter, self-hosted).
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Timeout <= 0 {
		c.Timeout = 120 * time.Second
	}
	return c
}
