package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/siahcodes/quickcmd/pkg/model"
)

// defaultPythonCandidates is the interpreter probe order. "py" is the
// Windows launcher.
var defaultPythonCandidates = []string{"py", "python", "python3"}

// Python executes commands through a Python interpreter. Single
// statements run inline via -c; anything that looks like a script is
// written to a scoped temporary file and run as a standalone program.
type Python struct {
	binary  string
	timeout time.Duration

	// OnLine receives stdout lines as they arrive. Optional.
	OnLine func(string)
}

// NewPython probes the default interpreter candidates. The scripting
// runtime is always considered available; if no candidate answers, the
// first default is kept and launch failures surface from Run.
func NewPython() *Python {
	return NewPythonWithCandidates(defaultPythonCandidates...)
}

// NewPythonWithCandidates probes the given interpreters in order and
// binds the first that reports a version.
func NewPythonWithCandidates(candidates ...string) *Python {
	p := &Python{timeout: defaultRunTimeout}
	for _, candidate := range candidates {
		if probePython(candidate) {
			p.binary = candidate
			log.Debug().Str("binary", candidate).Msg("Python interpreter detected")
			break
		}
	}
	if p.binary == "" && len(candidates) > 0 {
		p.binary = candidates[0]
	}
	return p
}

func probePython(binary string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, binary, "--version").Run() == nil
}

// Name returns the executor name.
func (p *Python) Name() string { return "python" }

// Available always reports true for the scripting runtime; a missing
// interpreter shows up as a launch error from Run instead.
func (p *Python) Available() bool { return true }

// Binary returns the bound interpreter name.
func (p *Python) Binary() string { return p.binary }

// IsScript reports whether the input should be treated as a standalone
// script rather than a single inline statement: multi-line input, a
// module import, or a function definition.
func IsScript(command string) bool {
	return strings.Contains(command, "\n") ||
		strings.HasPrefix(strings.TrimSpace(command), "import ") ||
		strings.Contains(command, "def ")
}

// Run executes Python code, streaming stdout to OnLine. Scripts go
// through a temporary file that is removed on every exit path.
func (p *Python) Run(ctx context.Context, command string) (model.ExecutionResult, error) {
	runCtx, cancel := withRunDeadline(ctx, p.timeout)
	defer cancel()

	if IsScript(command) {
		return p.runScript(runCtx, command)
	}
	cmd := exec.CommandContext(runCtx, p.binary, "-c", command)
	return runStreaming(runCtx, cmd, p.OnLine)
}

func (p *Python) runScript(ctx context.Context, script string) (model.ExecutionResult, error) {
	tmp, err := os.CreateTemp("", "quickcmd-*.py")
	if err != nil {
		return model.ExecutionResult{ExitCode: -1}, fmt.Errorf("create script file: %w", err)
	}
	// Removal is best-effort; a failed delete must not mask the result.
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(script); err != nil {
		tmp.Close()
		return model.ExecutionResult{ExitCode: -1}, fmt.Errorf("write script file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return model.ExecutionResult{ExitCode: -1}, fmt.Errorf("close script file: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.binary, tmp.Name())
	return runStreaming(ctx, cmd, p.OnLine)
}
