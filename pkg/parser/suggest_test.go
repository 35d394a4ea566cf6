package parser

import (
	"encoding/json"
	"testing"

	"github.com/siahcodes/quickcmd/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestion_JSON(t *testing.T) {
	raw := `{"command": "Get-Service", "description": "List services", "shell": "powershell", "warning": "careful"}`

	s, err := ParseSuggestion(raw, model.ShellPowerShell)
	require.NoError(t, err)
	assert.Equal(t, "Get-Service", s.Command)
	assert.Equal(t, "List services", s.Description)
	assert.Equal(t, model.ShellPowerShell, s.Shell)
	assert.Equal(t, "careful", s.Warning)
}

func TestParseSuggestion_JSONFenced(t *testing.T) {
	raw := "```json\n{\"command\": \"pip list\", \"shell\": \"python\"}\n```"

	s, err := ParseSuggestion(raw, model.ShellPowerShell)
	require.NoError(t, err)
	assert.Equal(t, "pip list", s.Command)
	assert.Equal(t, model.ShellPython, s.Shell)
}

func TestParseSuggestion_JSONDefaultsShellAndWarning(t *testing.T) {
	raw := `{"command": "Get-Process", "shell": "bash"}`

	s, err := ParseSuggestion(raw, model.ShellPython)
	require.NoError(t, err)
	assert.Equal(t, model.ShellPython, s.Shell)
	assert.Empty(t, s.Warning)
}

func TestParseSuggestion_JSONRejectsMissingCommand(t *testing.T) {
	for name, raw := range map[string]string{
		"missing":    `{"description": "x"}`,
		"empty":      `{"command": "", "description": "x"}`,
		"whitespace": `{"command": "   ", "description": "x"}`,
	} {
		t.Run(name, func(t *testing.T) {
			s, err := ParseSuggestion(raw, model.ShellPowerShell)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrNoCommand)
		})
	}
}

func TestParseSuggestion_TextLabels(t *testing.T) {
	raw := "Here you go:\nCommand: Get-NetAdapter\ndescription: Shows network adapters"

	s, err := ParseSuggestion(raw, model.ShellPowerShell)
	require.NoError(t, err)
	// The leading prose line is adopted first, then the explicit label
	// overrides it.
	assert.Equal(t, "Get-NetAdapter", s.Command)
	assert.Equal(t, "Shows network adapters", s.Description)
	assert.Equal(t, model.ShellPowerShell, s.Shell)
}

func TestParseSuggestion_TextFirstLine(t *testing.T) {
	raw := "# a comment\n\nnetstat -an\nsomething else"

	s, err := ParseSuggestion(raw, model.ShellPowerShell)
	require.NoError(t, err)
	assert.Equal(t, "netstat -an", s.Command)
}

func TestParseSuggestion_NoCommand(t *testing.T) {
	s, err := ParseSuggestion("# only a comment\n\n", model.ShellPowerShell)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestParseSuggestion_RoundTrip(t *testing.T) {
	original := model.Suggestion{
		Command:     "Get-Service | Where-Object {$_.Status -eq 'Running'}",
		Description: "List running services",
		Shell:       model.ShellPowerShell,
		Warning:     "heads up",
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := ParseSuggestion(string(encoded), model.ShellPython)
	require.NoError(t, err)
	assert.Equal(t, original, *decoded)
}
