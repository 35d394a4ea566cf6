// Package shell runs suggested commands in an external interpreter,
// streaming output as the subordinate process produces it.
package shell

import (
	"context"
	"errors"
	"time"

	"github.com/siahcodes/quickcmd/pkg/model"
)

// ErrUnavailable is returned by Run when no usable interpreter binary
// was found at construction time.
var ErrUnavailable = errors.New("no usable shell binary found")

const (
	// probeTimeout bounds each candidate-binary probe at construction.
	probeTimeout = 10 * time.Second
	// defaultRunTimeout bounds command execution when the caller's
	// context carries no deadline of its own.
	defaultRunTimeout = 30 * time.Second
)

// Executor runs one command or script and reports a structured result.
// Run blocks until the subordinate process exits or the timeout
// elapses; a timeout is reported through ExecutionResult.TimedOut, not
// as an error. Errors cover launch failures and unavailable targets.
// Executors never retry.
type Executor interface {
	Run(ctx context.Context, command string) (model.ExecutionResult, error)
	Available() bool
	Name() string
}

// withRunDeadline adds the default run timeout unless the caller
// already set a deadline.
func withRunDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
