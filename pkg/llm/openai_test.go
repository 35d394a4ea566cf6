package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siahcodes/quickcmd/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAI_Chat(t *testing.T) {
	var captured openaiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "  Get-Service  "}}]}`))
	}))
	defer server.Close()

	client := NewOpenAI("test-key", "gpt-3.5-turbo", server.URL)
	got, err := client.Chat(context.Background(), "system instruction", "list services")

	require.NoError(t, err)
	assert.Equal(t, "Get-Service", got)
	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system instruction", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.InDelta(t, 0.1, captured.Temperature, 0.001)
}

func TestOpenAI_ChatRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "requests"}}`))
	}))
	defer server.Close()

	client := NewOpenAI("test-key", "", server.URL)
	_, err := client.Chat(context.Background(), "system", "prompt")

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindQuota, backendErr.Kind)
	assert.Equal(t, "openai", backendErr.Provider)
}

func TestOpenAI_ChatQuotaExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "You exceeded your current quota", "type": "insufficient_quota"}}`))
	}))
	defer server.Close()

	client := NewOpenAI("test-key", "", server.URL)
	_, err := client.Chat(context.Background(), "system", "prompt")

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindQuota, backendErr.Kind)
}

func TestOpenAI_ChatUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
	}))
	defer server.Close()

	client := NewOpenAI("bad-key", "", server.URL)
	_, err := client.Chat(context.Background(), "system", "prompt")

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindTransport, backendErr.Kind)
	assert.Contains(t, backendErr.Error(), "Incorrect API key")
}

func TestOpenAI_ChatMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewOpenAI("test-key", "", server.URL)
	_, err := client.Chat(context.Background(), "system", "prompt")

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindDecode, backendErr.Kind)
}

func TestOpenAI_ChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewOpenAI("test-key", "", server.URL)
	_, err := client.Chat(context.Background(), "system", "prompt")

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindDecode, backendErr.Kind)
}

func TestNew_UnconfiguredVariants(t *testing.T) {
	cases := []model.ProviderConfig{
		{Provider: model.ProviderNone},
		{Provider: model.ProviderOpenAI, APIKey: ""},
		{Provider: model.ProviderGemini, APIKey: ""},
		{Provider: "mystery"},
	}

	for _, cfg := range cases {
		client := New(cfg)
		_, err := client.Chat(context.Background(), "system", "prompt")

		var backendErr *Error
		require.ErrorAs(t, err, &backendErr, "%+v", cfg)
		assert.Equal(t, KindUnconfigured, backendErr.Kind)
	}
}

func TestNew_ConfiguredProviders(t *testing.T) {
	openai := New(model.ProviderConfig{Provider: model.ProviderOpenAI, APIKey: "k"})
	assert.Equal(t, "openai", openai.Name())

	gemini := New(model.ProviderConfig{Provider: model.ProviderGemini, APIKey: "k"})
	assert.Equal(t, "gemini", gemini.Name())
}
