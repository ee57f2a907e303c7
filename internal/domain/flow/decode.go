package flow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// decodeOutput coerces raw model text into Out. Markdown code fences are tolerated;
// anything else that does not decode strictly into Out and satisfy its constraints fails.
func decodeOutput[Out any](raw string, v *validator.Validate) (Out, error) {
	var out Out
	payload := stripCodeFence(raw)
	if payload == "" {
		return out, errors.New("empty model response")
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode model response: %w", err)
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return out, errors.New("model response has trailing content")
	}

	if err := v.Struct(out); err != nil {
		return out, errors.New(describeValidation(err, 0))
	}
	return out, nil
}

func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
