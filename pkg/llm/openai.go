package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	openaiAPIURL  = "https://api.openai.com/v1/chat/completions"
	openaiTimeout = 30 * time.Second
)

// OpenAI is the chat-completions backend client.
type OpenAI struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAI creates an OpenAI client. baseURL is overridable for tests;
// pass "" for the production endpoint.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	if baseURL == "" {
		baseURL = openaiAPIURL
	}
	return &OpenAI{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: openaiTimeout},
	}
}

// Name returns the provider name.
func (o *OpenAI) Name() string { return "openai" }

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Chat sends one request with the system instruction and the rendered
// user prompt and returns the raw response text.
func (o *OpenAI) Chat(ctx context.Context, system, prompt string) (string, error) {
	reqBody := openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.1,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", newError(KindTransport, o.Name(), fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", newError(KindTransport, o.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", newError(KindTransport, o.Name(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(KindTransport, o.Name(), fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openaiResponse
		msg := strings.TrimSpace(string(respBody))
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		kind := KindTransport
		if resp.StatusCode == http.StatusTooManyRequests || strings.Contains(strings.ToLower(msg), "insufficient_quota") || apiErr.Error.Type == "insufficient_quota" {
			kind = KindQuota
		}
		log.Debug().Int("status", resp.StatusCode).Str("provider", o.Name()).Msg("backend request rejected")
		return "", newError(kind, o.Name(), fmt.Errorf("API error (%d): %s", resp.StatusCode, msg))
	}

	var parsed openaiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", newError(KindDecode, o.Name(), fmt.Errorf("parse response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", newError(KindDecode, o.Name(), fmt.Errorf("no response choices returned"))
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
