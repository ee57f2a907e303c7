package bodyanalysis

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/internal/domain/flow/flowtest"
)

func TestAnalyzeSuccess(t *testing.T) {
	gen := &flowtest.Generator{Text: `{"bodyType":" Hourglass ","undertone":"Warm"}`}
	svc := newTestService(t, gen)

	res, err := svc.Analyze(context.Background(), Request{PhotoDataURI: flowtest.JPEGDataURI(t)})
	require.NoError(t, err)
	require.Equal(t, "Hourglass", res.Output.BodyType)
	require.Equal(t, "warm", res.Output.Undertone)
	require.NotEmpty(t, res.Meta.InvocationID)

	req := gen.LastRequest()
	require.Equal(t, "analyzeBodyType", req.Flow)
	require.Contains(t, req.System, "skin undertones")
	require.Len(t, req.Parts, 2)
	require.Contains(t, req.Parts[0].Text, "warm, cool, or neutral")
	require.Equal(t, "image/jpeg", req.Parts[1].Media.MIMEType)
	require.Equal(t, []string{"bodyType", "undertone"}, req.Schema.Required)
}

func TestAnalyzeRejectsMissingPhoto(t *testing.T) {
	gen := &flowtest.Generator{}
	svc := newTestService(t, gen)

	_, err := svc.Analyze(context.Background(), Request{})
	require.Error(t, err)
	require.Equal(t, flow.KindInvalidInput, flow.KindOf(err))
	require.Zero(t, gen.Calls())
}

func TestAnalyzeRejectsPhotoWithoutMediaPrefix(t *testing.T) {
	gen := &flowtest.Generator{}
	svc := newTestService(t, gen)

	_, err := svc.Analyze(context.Background(), Request{PhotoDataURI: "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk"})
	require.Equal(t, flow.KindInvalidInput, flow.KindOf(err))
	require.Zero(t, gen.Calls())
}

func TestAnalyzeRejectsIncompleteOutput(t *testing.T) {
	gen := &flowtest.Generator{Text: `{"bodyType":"Pear"}`}
	svc := newTestService(t, gen)

	_, err := svc.Analyze(context.Background(), Request{PhotoDataURI: flowtest.PNGDataURI(t)})
	require.Equal(t, flow.KindOutputMismatch, flow.KindOf(err))
}

func newTestService(t *testing.T, gen flow.Generator) Service {
	t.Helper()
	svc, err := NewService(Config{Temperature: 0.2, MaxPhotoBytes: flow.DefaultMaxPhotoBytes}, gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc
}
