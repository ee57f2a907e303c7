package chatgpt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/pkg/metrics"
)

type stubChatClient struct {
	resp ChatCompletionResponse
	err  error
	req  ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	s.req = req
	return s.resp, s.err
}

func TestGeneratorMapsRequest(t *testing.T) {
	client := &stubChatClient{}
	client.resp.Model = "gpt-4o-2024"
	client.resp.Usage = Usage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110}
	client.resp.Choices = append(client.resp.Choices, struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	}{Message: Message{Role: "assistant", Content: `{"bodyType":"Pear"}`}})

	gen := NewGenerator(client, "")
	photo := &flow.Photo{MIMEType: "image/png", Data: []byte{1, 2, 3}}
	resp, err := gen.Generate(context.Background(), flow.GenerateRequest{
		Flow:        "analyzeBodyType",
		System:      "system prompt",
		Parts:       []flow.Part{{Text: "Photo: "}, {Media: photo}, {Text: "\nDone."}},
		Schema:      flow.Object("out", map[string]*flow.Schema{"bodyType": flow.String("")}),
		Temperature: 0.2,
	})
	require.NoError(t, err)
	require.Equal(t, `{"bodyType":"Pear"}`, resp.Text)
	require.Equal(t, "gpt-4o-2024", resp.Model)
	require.Equal(t, metrics.TokenUsage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110}, resp.Usage)

	req := client.req
	require.Equal(t, defaultModel, req.Model)
	require.InDelta(t, 0.2, req.Temperature, 1e-6)
	require.Len(t, req.Messages, 2)
	require.Equal(t, "system", req.Messages[0].Role)
	require.Equal(t, "system prompt", req.Messages[0].Content)
	require.Equal(t, []ContentPart{
		TextPart("Photo: "),
		ImagePart(photo.DataURI()),
		TextPart("\nDone."),
	}, req.Messages[1].Parts)
	require.NotNil(t, req.ResponseFormat)
	require.Equal(t, "analyzeBodyType", req.ResponseFormat.JSONSchema.Name)
	require.True(t, req.ResponseFormat.JSONSchema.Strict)
}

func TestGeneratorErrors(t *testing.T) {
	gen := NewGenerator(&stubChatClient{err: errors.New("boom")}, "gpt-test")
	_, err := gen.Generate(context.Background(), flow.GenerateRequest{Flow: "x"})
	require.EqualError(t, err, "boom")

	gen = NewGenerator(&stubChatClient{}, "gpt-test")
	_, err = gen.Generate(context.Background(), flow.GenerateRequest{Flow: "x"})
	require.ErrorContains(t, err, "no choices")
}

func TestSchemaName(t *testing.T) {
	require.Equal(t, "pairWardrobeOutfits", schemaName("pairWardrobeOutfits"))
	require.Equal(t, "ab_", schemaName("a.b _"))
	require.Equal(t, "output", schemaName("!!"))
}
