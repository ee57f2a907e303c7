package trending

import "context"

// Request carries the outfit photo to inspect.
type Request struct {
	PhotoDataURI string `json:"photoDataUri" validate:"required,photo"`
}

// Response lists the trending pieces spotted in the outfit. The list may be empty.
type Response struct {
	TrendingClothes []string `json:"trendingClothes" validate:"required"`
}

// Item is a tallied trending piece.
type Item struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Store persists the identification tally.
type Store interface {
	Increment(ctx context.Context, canonical, display string) error
	Top(ctx context.Context, limit int) ([]Item, error)
}

// Config wires runtime knobs for the trending flow.
type Config struct {
	Temperature   float32
	MaxPhotoBytes int
	TopLimit      int
}
