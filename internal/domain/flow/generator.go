package flow

import (
	"context"

	"github.com/yanqian/ai-stylist/pkg/metrics"
)

// Generator is the port to the hosted generative model.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}

// GenerateRequest is a rendered prompt ready to be sent to a provider.
type GenerateRequest struct {
	Flow        string
	System      string
	Parts       []Part
	Schema      *Schema
	Temperature float32
}

// GenerateResponse carries the raw model text and accounting data.
type GenerateResponse struct {
	Text  string
	Model string
	Usage metrics.TokenUsage
}
