// Package engine orchestrates the suggestion pipeline: backend
// dispatch, response normalization, safety validation and the
// deterministic fallback.
package engine

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/siahcodes/quickcmd/pkg/fallback"
	"github.com/siahcodes/quickcmd/pkg/llm"
	"github.com/siahcodes/quickcmd/pkg/model"
	"github.com/siahcodes/quickcmd/pkg/parser"
	"github.com/siahcodes/quickcmd/pkg/prompts"
	"github.com/siahcodes/quickcmd/pkg/safety"
)

// Engine generates one suggestion per Generate call. It owns the
// backend client and the immutable provider configuration; the fallback
// matcher is shared and read-only, so Engine is safe for concurrent use.
type Engine struct {
	client  llm.LLM
	cfg     model.ProviderConfig
	matcher *fallback.Matcher
}

// New creates an engine for the given configuration, building the
// backend client through the llm factory.
func New(cfg model.ProviderConfig) *Engine {
	return &Engine{
		client:  llm.New(cfg),
		cfg:     cfg,
		matcher: fallback.NewMatcher(fallback.DefaultRules),
	}
}

// NewWithLLM creates an engine around an explicit backend client.
func NewWithLLM(client llm.LLM, cfg model.ProviderConfig) *Engine {
	return &Engine{
		client:  client,
		cfg:     cfg,
		matcher: fallback.NewMatcher(fallback.DefaultRules),
	}
}

// Generate turns a natural language request into a suggestion. Backend
// and parse failures are absorbed here: whenever the AI path does not
// yield a non-empty command, the fallback matcher answers instead, so
// Generate always returns a usable record.
func (e *Engine) Generate(ctx context.Context, request string) model.Suggestion {
	raw, err := e.client.Chat(ctx, prompts.SystemPrompt, prompts.BuildUserPrompt(request, e.cfg.DefaultShell))
	if err != nil {
		log.Debug().Err(err).Str("provider", e.client.Name()).Msg("backend dispatch failed, using fallback")
		return e.matcher.Match(request)
	}

	s, err := parser.ParseSuggestion(raw, e.cfg.DefaultShell)
	if err != nil {
		log.Debug().Err(err).Str("provider", e.client.Name()).Msg("response unusable, using fallback")
		return e.matcher.Match(request)
	}

	return safety.Validate(*s)
}
