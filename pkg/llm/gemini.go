package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiTimeout = 60 * time.Second

// Gemini is the Google Gemini backend client, built on the official
// genai SDK. The underlying client is created lazily on first use.
type Gemini struct {
	apiKey  string
	model   string
	timeout time.Duration

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGemini creates a Gemini client.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   strings.TrimPrefix(model, "gemini:"),
		timeout: geminiTimeout,
	}
}

// Name returns the provider name.
func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) init(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.client, g.clientErr
}

// Chat sends one request to Gemini. The SDK call runs on its own
// goroutine under a bounded deadline so a hung backend can never block
// the caller past the timeout.
func (g *Gemini) Chat(ctx context.Context, system, prompt string) (string, error) {
	client, err := g.init(ctx)
	if err != nil {
		return "", newError(KindTransport, g.Name(), fmt.Errorf("create client: %w", err))
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	ch := make(chan reply, 1)

	go func() {
		resp, err := client.Models.GenerateContent(callCtx, g.model,
			genai.Text(prompt),
			&genai.GenerateContentConfig{
				Temperature:       genai.Ptr[float32](0.1),
				MaxOutputTokens:   500,
				SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			})
		if err != nil {
			ch <- reply{err: err}
			return
		}
		ch <- reply{text: strings.TrimSpace(resp.Text())}
	}()

	select {
	case <-callCtx.Done():
		log.Debug().Str("provider", g.Name()).Msg("backend call timed out")
		return "", newError(KindTransport, g.Name(), callCtx.Err())
	case r := <-ch:
		if r.err != nil {
			return "", newError(classifyGeminiErr(r.err), g.Name(), r.err)
		}
		if r.text == "" {
			return "", newError(KindDecode, g.Name(), fmt.Errorf("empty response from Gemini"))
		}
		return r.text, nil
	}
}

func classifyGeminiErr(err error) ErrorKind {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return KindQuota
	}
	if strings.Contains(strings.ToLower(err.Error()), "quota") {
		return KindQuota
	}
	return KindTransport
}
