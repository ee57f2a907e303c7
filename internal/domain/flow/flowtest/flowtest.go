// Package flowtest provides test doubles for code built on package flow.
package flowtest

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"
	"testing"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/pkg/metrics"
)

// Generator is a scripted flow.Generator that records every request it receives.
type Generator struct {
	mu       sync.Mutex
	Text     string
	Model    string
	Usage    metrics.TokenUsage
	Err      error
	Requests []flow.GenerateRequest
}

// Generate implements flow.Generator.
func (g *Generator) Generate(_ context.Context, req flow.GenerateRequest) (flow.GenerateResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Requests = append(g.Requests, req)
	if g.Err != nil {
		return flow.GenerateResponse{}, g.Err
	}
	model := g.Model
	if model == "" {
		model = "stub-model"
	}
	return flow.GenerateResponse{Text: g.Text, Model: model, Usage: g.Usage}, nil
}

// Calls reports how many times Generate was invoked.
func (g *Generator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Requests)
}

// LastRequest returns the most recent request, or a zero value.
func (g *Generator) LastRequest() flow.GenerateRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Requests) == 0 {
		return flow.GenerateRequest{}
	}
	return g.Requests[len(g.Requests)-1]
}

// PNGDataURI returns a small, valid PNG encoded as a data URI.
func PNGDataURI(t testing.TB) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, sampleImage()); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// JPEGDataURI returns a small, valid JPEG encoded as a data URI.
func JPEGDataURI(t testing.TB) string {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, sampleImage(), &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	return img
}

var _ flow.Generator = (*Generator)(nil)
