package outfit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
)

const systemPrompt = "You are a personal stylist who builds flattering outfits from a client's body type, body shape and seasonal color palette."

const promptTemplate = `Suggest one complete outfit for this client.

Body type: {{.BodyType}}
Body shape: {{.BodyShape}}
Color palette: {{.ColorPalette}}

List each garment, shoe and accessory of the outfit as a separate entry, then explain why the combination flatters the client's proportions and coloring.`

var outputSchema = flow.Object("A suggested outfit with the reasoning behind it.", map[string]*flow.Schema{
	"suggestedOutfit": flow.ArrayOf(flow.String("One garment, shoe or accessory, including its color."), "The pieces of the suggested outfit."),
	"reasoning":       flow.String("Why this outfit suits the client's body type, shape and palette."),
})

// Service exposes the clothing pairing flow.
type Service interface {
	Suggest(ctx context.Context, req Request) (flow.Result[Response], error)
}

type service struct {
	flow   *flow.Flow[Request, Response]
	logger *slog.Logger
}

// NewService wires up the clothing pairing flow.
func NewService(cfg Config, generator flow.Generator, logger *slog.Logger) (Service, error) {
	f, err := flow.New(flow.Definition[Request, Response]{
		Name:     "suggestClothingPairings",
		System:   systemPrompt,
		Template: promptTemplate,
		Output:   outputSchema,
	}, generator, flow.Options{Temperature: cfg.Temperature}, logger)
	if err != nil {
		return nil, err
	}
	return &service{flow: f, logger: logger.With("component", "outfit.service")}, nil
}

func (s *service) Suggest(ctx context.Context, req Request) (flow.Result[Response], error) {
	req.BodyType = strings.TrimSpace(req.BodyType)
	req.BodyShape = strings.TrimSpace(req.BodyShape)
	req.ColorPalette = strings.TrimSpace(req.ColorPalette)

	res, err := s.flow.Run(ctx, req)
	if err != nil {
		return flow.Result[Response]{}, err
	}
	for i, piece := range res.Output.SuggestedOutfit {
		res.Output.SuggestedOutfit[i] = strings.TrimSpace(piece)
	}
	res.Output.Reasoning = strings.TrimSpace(res.Output.Reasoning)
	return res, nil
}
