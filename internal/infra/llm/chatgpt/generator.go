package chatgpt

import (
	"context"
	"errors"
	"strings"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/pkg/metrics"
)

const defaultModel = "gpt-4o-mini"

// ChatClient is the subset of Client used by Generator.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}

// Generator adapts the chat completions API to flow.Generator.
type Generator struct {
	client ChatClient
	model  string
}

// NewGenerator builds a Generator that sends every flow to model.
func NewGenerator(client ChatClient, model string) *Generator {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate implements flow.Generator.
func (g *Generator) Generate(ctx context.Context, req flow.GenerateRequest) (flow.GenerateResponse, error) {
	messages := make([]Message, 0, 2)
	if req.System != "" {
		messages = append(messages, Message{Role: "system", Content: req.System})
	}
	messages = append(messages, Message{Role: "user", Parts: contentParts(req.Parts)})

	chatReq := ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.Schema != nil {
		chatReq.ResponseFormat = &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   schemaName(req.Flow),
				Strict: true,
				Schema: req.Schema.JSONSchema(),
			},
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return flow.GenerateResponse{}, err
	}
	if len(resp.Choices) == 0 {
		return flow.GenerateResponse{}, errors.New("chatgpt returned no choices")
	}
	model := resp.Model
	if model == "" {
		model = g.model
	}
	return flow.GenerateResponse{
		Text:  messageText(resp.Choices[0].Message),
		Model: model,
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func contentParts(parts []flow.Part) []ContentPart {
	out := make([]ContentPart, 0, len(parts))
	for _, part := range parts {
		if part.Media != nil {
			out = append(out, ImagePart(part.Media.DataURI()))
			continue
		}
		if part.Text != "" {
			out = append(out, TextPart(part.Text))
		}
	}
	return out
}

func messageText(msg Message) string {
	if len(msg.Parts) == 0 {
		return msg.Content
	}
	var b strings.Builder
	for _, part := range msg.Parts {
		if part.Type == "text" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// schemaName keeps only the characters the API accepts in a schema name.
func schemaName(flowName string) string {
	var b strings.Builder
	for _, r := range flowName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "output"
	}
	return b.String()
}
