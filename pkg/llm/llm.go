// Package llm contains the AI backend clients used to turn natural
// language requests into command suggestions.
package llm

import "context"

// LLM is the interface implemented by every backend client. Chat sends
// one request built from a fixed system instruction and a rendered user
// prompt and returns the raw response text. Implementations enforce
// their own timeouts, never retry, and report failures as *Error values
// so the caller can decide whether to fall back.
type LLM interface {
	Chat(ctx context.Context, system, prompt string) (string, error)
	Name() string
}
