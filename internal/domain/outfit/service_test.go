package outfit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/internal/domain/flow/flowtest"
)

func TestSuggestHourglassAutumn(t *testing.T) {
	gen := &flowtest.Generator{Text: `{"suggestedOutfit":["Rust wrap dress","Cognac knee boots","Gold hoops"],"reasoning":"The wrap defines the waist and warm tones suit an Autumn palette."}`}
	svc := newTestService(t, gen)

	res, err := svc.Suggest(context.Background(), Request{BodyType: "Hourglass", BodyShape: "Hourglass", ColorPalette: "Autumn"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Output.SuggestedOutfit)
	require.NotEmpty(t, res.Output.Reasoning)

	req := gen.LastRequest()
	require.Equal(t, "suggestClothingPairings", req.Flow)
	require.Len(t, req.Parts, 1)
	require.Nil(t, req.Parts[0].Media)
	require.Contains(t, req.Parts[0].Text, "Body type: Hourglass")
	require.Contains(t, req.Parts[0].Text, "Body shape: Hourglass")
	require.Contains(t, req.Parts[0].Text, "Color palette: Autumn")
}

func TestSuggestRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{name: "body type", req: Request{BodyShape: "Oval", ColorPalette: "Winter"}, field: "bodyType"},
		{name: "body shape", req: Request{BodyType: "Pear", BodyShape: "  ", ColorPalette: "Winter"}, field: "bodyShape"},
		{name: "palette", req: Request{BodyType: "Pear", BodyShape: "Oval"}, field: "colorPalette"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &flowtest.Generator{}
			svc := newTestService(t, gen)

			_, err := svc.Suggest(context.Background(), tt.req)
			require.Equal(t, flow.KindInvalidInput, flow.KindOf(err))
			require.ErrorContains(t, err, tt.field+" is required")
			require.Zero(t, gen.Calls())
		})
	}
}

func TestSuggestRejectsEmptyOutfit(t *testing.T) {
	gen := &flowtest.Generator{Text: `{"suggestedOutfit":[],"reasoning":"Nothing fits."}`}
	svc := newTestService(t, gen)

	_, err := svc.Suggest(context.Background(), Request{BodyType: "Apple", BodyShape: "Oval", ColorPalette: "Summer"})
	require.Equal(t, flow.KindOutputMismatch, flow.KindOf(err))
}

func TestOptionsReturnsCopies(t *testing.T) {
	opts := Options()
	require.Contains(t, opts.BodyTypes, "Hourglass")
	require.Len(t, opts.ColorPalettes, 4)

	opts.BodyTypes[0] = "mutated"
	require.Equal(t, "Hourglass", Options().BodyTypes[0])
}

func newTestService(t *testing.T, gen flow.Generator) Service {
	t.Helper()
	svc, err := NewService(Config{Temperature: 0.4}, gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc
}
