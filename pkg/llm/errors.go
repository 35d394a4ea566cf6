package llm

import "fmt"

// ErrorKind classifies backend failures so the suggestion engine can
// log them meaningfully before falling back.
type ErrorKind string

const (
	// KindUnconfigured means no usable backend is selected.
	KindUnconfigured ErrorKind = "unconfigured"
	// KindTransport covers network errors, timeouts and bad credentials.
	KindTransport ErrorKind = "transport"
	// KindQuota means the provider rejected the request for billing or
	// rate-limit reasons.
	KindQuota ErrorKind = "quota"
	// KindDecode means the provider answered but the body was unusable.
	KindDecode ErrorKind = "decode"
)

// Error is the tagged failure returned by every backend client. It is
// the only error type that crosses the gateway boundary.
type Error struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// newError wraps err with a kind and provider tag.
func newError(kind ErrorKind, provider string, err error) *Error {
	return &Error{Kind: kind, Provider: provider, Err: err}
}
