package llm

import (
	"context"
	"fmt"

	"github.com/siahcodes/quickcmd/pkg/model"
)

// New creates the backend client for the given configuration. The
// variant set is closed: a provider the factory does not know, or one
// missing its API key, yields the unconfigured client whose Chat always
// fails with KindUnconfigured so the engine can fall back.
func New(cfg model.ProviderConfig) LLM {
	switch cfg.Provider {
	case model.ProviderOpenAI:
		if cfg.APIKey == "" {
			return unconfigured{reason: "OpenAI API key not set"}
		}
		return NewOpenAI(cfg.APIKey, cfg.Model, "")
	case model.ProviderGemini:
		if cfg.APIKey == "" {
			return unconfigured{reason: "Gemini API key not set"}
		}
		return NewGemini(cfg.APIKey, cfg.Model)
	default:
		return unconfigured{reason: fmt.Sprintf("no AI provider configured (provider %q)", cfg.Provider)}
	}
}

// unconfigured is the no-backend variant. Dispatching through it always
// fails; it exists so callers hold a real LLM value either way.
type unconfigured struct {
	reason string
}

func (u unconfigured) Name() string { return "none" }

func (u unconfigured) Chat(ctx context.Context, system, prompt string) (string, error) {
	return "", newError(KindUnconfigured, u.Name(), fmt.Errorf("%s", u.reason))
}
