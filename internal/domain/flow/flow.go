// Package flow implements the request/response adapter shared by every AI flow:
// validate the input record, render the prompt, call the model once, coerce the
// answer into the output record.
package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/yanqian/ai-stylist/pkg/errors"
	"github.com/yanqian/ai-stylist/pkg/metrics"
	"github.com/yanqian/ai-stylist/pkg/util"
)

// Definition is the static configuration of a flow.
type Definition[In, Out any] struct {
	Name     string
	System   string
	Template string
	Output   *Schema
}

// Options are the runtime knobs shared by all flows.
type Options struct {
	Temperature   float32
	MaxPhotoBytes int
}

// Meta describes a single invocation.
type Meta struct {
	InvocationID string
	Model        string
	Duration     time.Duration
	Usage        metrics.TokenUsage
}

// Result is a schema-conforming output plus invocation metadata.
type Result[Out any] struct {
	Output Out
	Meta   Meta
}

// Flow binds a Definition to a Generator.
type Flow[In, Out any] struct {
	def       Definition[In, Out]
	system    string
	tmpl      *template.Template
	generator Generator
	validate  *validator.Validate
	opts      Options
	logger    *slog.Logger
	now       util.Clock
	newID     func() string
}

// New compiles the definition's template and prepares the flow for use.
func New[In, Out any](def Definition[In, Out], generator Generator, opts Options, logger *slog.Logger) (*Flow[In, Out], error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, errors.New("flow name cannot be empty")
	}
	if def.Output == nil {
		return nil, fmt.Errorf("flow %s: output schema cannot be nil", def.Name)
	}
	if generator == nil {
		return nil, fmt.Errorf("flow %s: generator cannot be nil", def.Name)
	}
	tmpl, err := parseTemplate(def.Name, def.Template)
	if err != nil {
		return nil, err
	}
	system, err := buildSystemPrompt(def.System, def.Output)
	if err != nil {
		return nil, fmt.Errorf("flow %s: %w", def.Name, err)
	}
	return &Flow[In, Out]{
		def:       def,
		system:    system,
		tmpl:      tmpl,
		generator: generator,
		validate:  newValidator(opts.MaxPhotoBytes),
		opts:      opts,
		logger:    logger.With("component", "flow", "flow", def.Name),
		now:       util.NowUTC,
		newID:     uuid.NewString,
	}, nil
}

// Name returns the flow name.
func (f *Flow[In, Out]) Name() string {
	return f.def.Name
}

// Run performs one invocation. Invalid input fails before the provider is contacted.
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (Result[Out], error) {
	if err := f.validate.StructCtx(ctx, in); err != nil {
		return Result[Out]{}, apperrors.Wrap(KindInvalidInput, describeValidation(err, f.opts.MaxPhotoBytes), err)
	}
	parts, err := render(f.tmpl, in, f.opts.MaxPhotoBytes)
	if err != nil {
		return Result[Out]{}, apperrors.Wrap(KindInvalidInput, "prompt could not be rendered from input", err)
	}

	id := f.newID()
	logger := f.logger.With("invocation_id", id)
	started := f.now()

	resp, err := f.generator.Generate(ctx, GenerateRequest{
		Flow:        f.def.Name,
		System:      f.system,
		Parts:       parts,
		Schema:      f.def.Output,
		Temperature: f.opts.Temperature,
	})
	elapsed := f.now.Since(started)
	if err != nil {
		logger.Error("provider call failed", "duration_ms", elapsed.Milliseconds(), "error", err)
		return Result[Out]{}, apperrors.Wrap(KindProvider, "provider call failed", err)
	}

	out, err := decodeOutput[Out](resp.Text, f.validate)
	if err != nil {
		logger.Warn("model output rejected", "model", resp.Model, "duration_ms", elapsed.Milliseconds(), "error", err)
		return Result[Out]{}, apperrors.Wrap(KindOutputMismatch, "model output does not match the "+f.def.Name+" schema", err)
	}

	args := []any{"model", resp.Model, "duration_ms", elapsed.Milliseconds(), "media_parts", countMedia(parts)}
	if !resp.Usage.IsZero() {
		args = append(args, resp.Usage.LogArgs()...)
	}
	logger.Info("flow completed", args...)

	return Result[Out]{
		Output: out,
		Meta: Meta{
			InvocationID: id,
			Model:        resp.Model,
			Duration:     elapsed,
			Usage:        resp.Usage,
		},
	}, nil
}

func buildSystemPrompt(base string, output *Schema) (string, error) {
	schema, err := json.Marshal(output.JSONSchema())
	if err != nil {
		return "", fmt.Errorf("encode output schema: %w", err)
	}
	base = strings.TrimSpace(base)
	enforcer := "Respond ONLY with valid minified JSON that conforms to this JSON Schema: " + string(schema) +
		". Never wrap the JSON in prose and never add fields that are not in the schema."
	if base == "" {
		return enforcer, nil
	}
	return base + "\n\n" + enforcer, nil
}

func countMedia(parts []Part) int {
	n := 0
	for _, p := range parts {
		if p.Media != nil {
			n++
		}
	}
	return n
}
