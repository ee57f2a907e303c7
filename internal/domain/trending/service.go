package trending

import (
	"context"
	"log/slog"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	apperrors "github.com/yanqian/ai-stylist/pkg/errors"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

const systemPrompt = "You are a fashion expert who follows current runway, street style and retail trends."

const promptTemplate = `Analyze the outfit in the image and identify the trending clothes.

Image: {{media .PhotoDataURI}}

Return a list of trending clothes identified in the outfit. Return an empty list when nothing in the outfit is currently trending.`

var outputSchema = flow.Object("Trending pieces identified in the outfit.", map[string]*flow.Schema{
	"trendingClothes": flow.ArrayOf(flow.String("Short name of a trending clothing item."), "A list of trending clothes identified in the outfit."),
})

// Service exposes trend identification and the identification tally.
type Service interface {
	Identify(ctx context.Context, req Request) (flow.Result[Response], error)
	Top(ctx context.Context, limit int) ([]Item, error)
}

type service struct {
	cfg    Config
	flow   *flow.Flow[Request, Response]
	store  Store
	logger *slog.Logger
}

// NewService wires up the trending flow and its tally store.
func NewService(cfg Config, generator flow.Generator, store Store, logger *slog.Logger) (Service, error) {
	f, err := flow.New(flow.Definition[Request, Response]{
		Name:     "identifyTrendingClothes",
		System:   systemPrompt,
		Template: promptTemplate,
		Output:   outputSchema,
	}, generator, flow.Options{Temperature: cfg.Temperature, MaxPhotoBytes: cfg.MaxPhotoBytes}, logger)
	if err != nil {
		return nil, err
	}
	return &service{
		cfg:    cfg,
		flow:   f,
		store:  store,
		logger: logger.With("component", "trending.service"),
	}, nil
}

func (s *service) Identify(ctx context.Context, req Request) (flow.Result[Response], error) {
	res, err := s.flow.Run(ctx, req)
	if err != nil {
		return flow.Result[Response]{}, err
	}
	res.Output.TrendingClothes = normalizeList(res.Output.TrendingClothes)
	s.record(ctx, res.Output.TrendingClothes)
	return res, nil
}

// record tallies identified items. Failures are logged and never reach the caller.
func (s *service) record(ctx context.Context, items []string) {
	if s.store == nil {
		return
	}
	for _, item := range items {
		if err := s.store.Increment(ctx, canonicalName(item), item); err != nil {
			s.logger.Warn("trend tally update failed", "item", item, "error", err)
			return
		}
	}
}

func (s *service) Top(ctx context.Context, limit int) ([]Item, error) {
	if s.store == nil {
		return []Item{}, nil
	}
	if limit <= 0 {
		limit = s.cfg.TopLimit
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}
	items, err := s.store.Top(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("trend_store_error", "failed to load trending items", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}
