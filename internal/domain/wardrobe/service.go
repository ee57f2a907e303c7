package wardrobe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	apperrors "github.com/yanqian/ai-stylist/pkg/errors"
)

const systemPrompt = "You are a fashion stylist who helps people get more out of the clothes they already own."

const promptTemplate = `The user owns the following clothing items:
{{range $i, $item := .ClothingItems}}
Item {{inc $i}}: {{$item.Type}}, {{$item.Color}}. {{$item.Description}}
Photo: {{media $item.PhotoDataURI}}
{{end}}
Combine these items into complete outfits. Use only the items listed above, reference each one by its type and description, and describe the occasion or style each outfit suits.`

var outputSchema = flow.Object("Outfits assembled from the user's wardrobe.", map[string]*flow.Schema{
	"suggestedOutfits": flow.ArrayOf(flow.Object("One outfit.", map[string]*flow.Schema{
		"description": flow.String("What the outfit is and when to wear it."),
		"items": flow.ArrayOf(flow.Object("A wardrobe item used in the outfit.", map[string]*flow.Schema{
			"type":        flow.String("The clothing type of the item, as given by the user."),
			"description": flow.String("The description of the item, as given by the user."),
		}), "The wardrobe items that make up the outfit."),
	}), "Suggested outfits."),
})

// Service exposes the wardrobe pairing flow.
type Service interface {
	Pair(ctx context.Context, req Request) (flow.Result[Response], error)
}

type service struct {
	cfg    Config
	flow   *flow.Flow[Request, Response]
	logger *slog.Logger
}

// NewService wires up the wardrobe pairing flow.
func NewService(cfg Config, generator flow.Generator, logger *slog.Logger) (Service, error) {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	f, err := flow.New(flow.Definition[Request, Response]{
		Name:     "pairWardrobeOutfits",
		System:   systemPrompt,
		Template: promptTemplate,
		Output:   outputSchema,
	}, generator, flow.Options{Temperature: cfg.Temperature, MaxPhotoBytes: cfg.MaxPhotoBytes}, logger)
	if err != nil {
		return nil, err
	}
	return &service{cfg: cfg, flow: f, logger: logger.With("component", "wardrobe.service")}, nil
}

func (s *service) Pair(ctx context.Context, req Request) (flow.Result[Response], error) {
	if len(req.ClothingItems) > s.cfg.MaxItems {
		msg := fmt.Sprintf("clothingItems must contain at most %d item(s)", s.cfg.MaxItems)
		return flow.Result[Response]{}, apperrors.Wrap(flow.KindInvalidInput, msg, nil)
	}
	res, err := s.flow.Run(ctx, req)
	if err != nil {
		return flow.Result[Response]{}, err
	}
	s.logger.Debug("wardrobe outfits ready", "invocation_id", res.Meta.InvocationID, "items", len(req.ClothingItems), "outfits", len(res.Output.Outfits))
	return res, nil
}
