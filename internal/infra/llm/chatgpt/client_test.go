package chatgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateChatCompletionSendsMultimodalPayload(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"gpt-test","choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":12,"completion_tokens":4,"total_tokens":16}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL+"/v1/", time.Second)
	require.NoError(t, err)

	resp, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model: "gpt-test",
		Messages: []Message{
			{Role: "system", Content: "be brief"},
			{Role: "user", Parts: []ContentPart{TextPart("look:"), ImagePart("data:image/png;base64,AAAA")}},
		},
		ResponseFormat: &ResponseFormat{Type: "json_schema", JSONSchema: &JSONSchema{Name: "out", Strict: true, Schema: map[string]any{"type": "object"}}},
	})
	require.NoError(t, err)
	require.Equal(t, "gpt-test", resp.Model)
	require.Len(t, resp.Choices, 1)
	require.Equal(t, `{"ok":true}`, resp.Choices[0].Message.Content)
	require.Equal(t, Usage{PromptTokens: 12, CompletionTokens: 4, TotalTokens: 16}, resp.Usage)

	messages := captured["messages"].([]any)
	require.Equal(t, "be brief", messages[0].(map[string]any)["content"])
	parts := messages[1].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	require.Equal(t, "text", parts[0].(map[string]any)["type"])
	image := parts[1].(map[string]any)
	require.Equal(t, "image_url", image["type"])
	require.Equal(t, "data:image/png;base64,AAAA", image["image_url"].(map[string]any)["url"])
	format := captured["response_format"].(map[string]any)
	require.Equal(t, "json_schema", format["type"])
	require.Equal(t, true, format["json_schema"].(map[string]any)["strict"])
}

func TestCreateChatCompletionSendsZeroTemperature(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"gpt-test","choices":[{"message":{"role":"assistant","content":"{}"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model:    "gpt-test",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	require.Contains(t, captured, "temperature")
	require.Equal(t, float64(0), captured["temperature"])
}

func TestCreateChatCompletionReportsHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), ChatCompletionRequest{Model: "gpt-test"})
	require.ErrorContains(t, err, "status=429")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("  ", "", 0)
	require.Error(t, err)
}

func TestMessageUnmarshalArrayContent(t *testing.T) {
	var msg Message
	require.NoError(t, json.Unmarshal([]byte(`{"role":"assistant","content":[{"type":"text","text":"hi"}]}`), &msg))
	require.Equal(t, "assistant", msg.Role)
	require.Empty(t, msg.Content)
	require.Equal(t, []ContentPart{TextPart("hi")}, msg.Parts)

	require.NoError(t, json.Unmarshal([]byte(`{"role":"assistant","content":null}`), &msg))
	require.Empty(t, msg.Content)
	require.Nil(t, msg.Parts)
}
