package bodyanalysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
)

const systemPrompt = "You are a fashion expert, skilled in analyzing body types and skin undertones from images."

const promptTemplate = `Analyze the user's body type and skin undertone from the provided image. The undertone should be warm, cool, or neutral.

Photo: {{media .PhotoDataURI}}`

var outputSchema = flow.Object("Body type and skin undertone of the person in the photo.", map[string]*flow.Schema{
	"bodyType":  flow.String("The user's body type."),
	"undertone": flow.String("The user's skin undertone (warm, cool, neutral)."),
})

// Service exposes the body and undertone analysis flow.
type Service interface {
	Analyze(ctx context.Context, req Request) (flow.Result[Response], error)
}

type service struct {
	flow   *flow.Flow[Request, Response]
	logger *slog.Logger
}

// NewService wires up the analysis flow.
func NewService(cfg Config, generator flow.Generator, logger *slog.Logger) (Service, error) {
	f, err := flow.New(flow.Definition[Request, Response]{
		Name:     "analyzeBodyType",
		System:   systemPrompt,
		Template: promptTemplate,
		Output:   outputSchema,
	}, generator, flow.Options{Temperature: cfg.Temperature, MaxPhotoBytes: cfg.MaxPhotoBytes}, logger)
	if err != nil {
		return nil, err
	}
	return &service{flow: f, logger: logger.With("component", "bodyanalysis.service")}, nil
}

func (s *service) Analyze(ctx context.Context, req Request) (flow.Result[Response], error) {
	res, err := s.flow.Run(ctx, req)
	if err != nil {
		return flow.Result[Response]{}, err
	}
	res.Output.BodyType = strings.TrimSpace(res.Output.BodyType)
	res.Output.Undertone = strings.ToLower(strings.TrimSpace(res.Output.Undertone))
	s.logger.Debug("body analysis ready", "invocation_id", res.Meta.InvocationID, "body_type", res.Output.BodyType, "undertone", res.Output.Undertone)
	return res, nil
}
