// Package gemini adapts the Google Gen AI SDK to flow.Generator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/pkg/metrics"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
)

// ContentGenerator is the subset of genai.Models used by Generator.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator sends flow requests to a Gemini model.
type Generator struct {
	models ContentGenerator
	model  string
}

// NewClient builds a Gemini API client for apiKey.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*genai.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

// NewGenerator builds a Generator that sends every flow to model.
func NewGenerator(models ContentGenerator, model string) *Generator {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Generator{models: models, model: model}
}

// Generate implements flow.Generator.
func (g *Generator) Generate(ctx context.Context, req flow.GenerateRequest) (flow.GenerateResponse, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		ResponseMIMEType: "application/json",
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}
	contents := []*genai.Content{genai.NewContentFromParts(toParts(req.Parts), genai.RoleUser)}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return flow.GenerateResponse{}, fmt.Errorf("generate content: %w", err)
	}
	text, err := responseText(resp)
	if err != nil {
		return flow.GenerateResponse{}, err
	}
	model := resp.ModelVersion
	if model == "" {
		model = g.model
	}
	return flow.GenerateResponse{Text: text, Model: model, Usage: usage(resp)}, nil
}

func toParts(parts []flow.Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		if part.Media != nil {
			out = append(out, genai.NewPartFromBytes(part.Media.Data, part.Media.MIMEType))
			continue
		}
		if part.Text != "" {
			out = append(out, genai.NewPartFromText(part.Text))
		}
	}
	return out
}

func toGenaiSchema(s *flow.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{Description: s.Description}
	switch s.Type {
	case flow.TypeObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
		out.Required = append([]string(nil), s.Required...)
		out.PropertyOrdering = s.PropertyNames()
	case flow.TypeArray:
		out.Type = genai.TypeArray
		out.Items = toGenaiSchema(s.Items)
	default:
		out.Type = genai.TypeString
	}
	return out
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

func usage(resp *genai.GenerateContentResponse) metrics.TokenUsage {
	if resp.UsageMetadata == nil {
		return metrics.TokenUsage{}
	}
	return metrics.TokenUsage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
	}
}
