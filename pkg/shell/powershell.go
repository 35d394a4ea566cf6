package shell

import (
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/siahcodes/quickcmd/pkg/model"
)

// defaultPowerShellCandidates is the probe order: Windows PowerShell
// first, then PowerShell Core.
var defaultPowerShellCandidates = []string{"powershell", "pwsh"}

// PowerShell executes commands through an external PowerShell binary.
// The binary is chosen once at construction; if no candidate responds,
// Run reports unavailability instead of attempting execution.
type PowerShell struct {
	binary  string
	timeout time.Duration

	// OnLine receives stdout lines as they arrive. Optional.
	OnLine func(string)
}

// NewPowerShell probes the default candidate binaries and binds the
// first one that answers a no-op invocation.
func NewPowerShell() *PowerShell {
	return NewPowerShellWithCandidates(defaultPowerShellCandidates...)
}

// NewPowerShellWithCandidates probes the given binaries in order. Each
// probe runs a trivial command under a bounded timeout; the first
// success is bound for all subsequent calls.
func NewPowerShellWithCandidates(candidates ...string) *PowerShell {
	p := &PowerShell{timeout: defaultRunTimeout}
	for _, candidate := range candidates {
		if probePowerShell(candidate) {
			p.binary = candidate
			log.Debug().Str("binary", candidate).Msg("PowerShell detected")
			break
		}
		log.Debug().Str("binary", candidate).Msg("PowerShell candidate not usable")
	}
	return p
}

func probePowerShell(binary string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	return exec.CommandContext(ctx, binary, "-Command", `Write-Host "test"`).Run() == nil
}

// Name returns the executor name.
func (p *PowerShell) Name() string { return "powershell" }

// Available reports whether a usable binary was found.
func (p *PowerShell) Available() bool { return p.binary != "" }

// Binary returns the bound executable name, or "" when unavailable.
func (p *PowerShell) Binary() string { return p.binary }

// Run executes one PowerShell command, streaming stdout to OnLine. When
// no binary is bound it returns ErrUnavailable without launching
// anything.
func (p *PowerShell) Run(ctx context.Context, command string) (model.ExecutionResult, error) {
	if !p.Available() {
		return model.ExecutionResult{ExitCode: -1}, ErrUnavailable
	}

	runCtx, cancel := withRunDeadline(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, p.binary, "-Command", command)
	return runStreaming(runCtx, cmd, p.OnLine)
}
