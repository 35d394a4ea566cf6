package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerShell_NoUsableBinary(t *testing.T) {
	p := NewPowerShellWithCandidates("definitely-not-a-powershell-binary")

	assert.False(t, p.Available())
	assert.Empty(t, p.Binary())

	result, err := p.Run(context.Background(), `Write-Host "test"`)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, -1, result.ExitCode)
}

func TestPowerShell_ProbeOrder(t *testing.T) {
	// A probe that cannot succeed anywhere leaves the executor unbound
	// rather than guessing a binary.
	p := NewPowerShellWithCandidates()

	assert.False(t, p.Available())
	assert.Equal(t, "powershell", p.Name())
}
