package gateway

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/formlift/docextract/internal/common"
)

var (
	reFence        = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// RepairToJSON turns model output into strict JSON, tolerating the usual
// failure modes: markdown fences, prose around the object, trailing commas,
// and truncation mid-string or mid-object (common with streamed partials).
// Returns common.ErrInvalidModelOutput when no JSON value can be recovered.
func RepairToJSON(text string) (json.RawMessage, error) {
	s := strings.TrimSpace(text)
	if m := reFence.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, fmt.Errorf("no JSON value in output: %w", common.ErrInvalidModelOutput)
	}
	s = s[start:]
	s = reTrailingComma.ReplaceAllString(s, "$1")

	if fixed, ok := tryBalance(s); ok {
		return fixed, nil
	}

	// Retreat: cut the tail back to successive commas and retry, dropping the
	// incomplete trailing member each time.
	cut := len(s)
	for attempts := 0; attempts < 32; attempts++ {
		cut = strings.LastIndex(s[:cut], ",")
		if cut <= 0 {
			break
		}
		if fixed, ok := tryBalance(s[:cut]); ok {
			return fixed, nil
		}
	}

	return nil, fmt.Errorf("unparseable after repair: %w", common.ErrInvalidModelOutput)
}

// tryBalance closes any unterminated string and unclosed brackets, then checks
// the result is strict JSON.
func tryBalance(s string) (json.RawMessage, bool) {
	var stack []byte
	inStr, esc := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	out := s
	if esc {
		out = out[:len(out)-1]
	}
	if inStr {
		out += `"`
	}
	out = strings.TrimRight(out, " \t\r\n")
	out = strings.TrimSuffix(out, ",")
	out = strings.TrimRight(out, " \t\r\n")
	// a dangling key like `"total":` cannot be completed; drop it
	if strings.HasSuffix(out, ":") {
		if idx := strings.LastIndex(out, ","); idx > 0 {
			out = out[:idx]
		} else if idx := strings.LastIndexAny(out, "{["); idx >= 0 {
			out = out[:idx+1]
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			out += "}"
		} else {
			out += "]"
		}
	}

	if !json.Valid([]byte(out)) {
		return nil, false
	}
	return json.RawMessage(out), true
}
