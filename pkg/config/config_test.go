package config

import (
	"path/filepath"
	"testing"

	"github.com/siahcodes/quickcmd/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable FromEnv reads so host settings cannot
// leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AI_PROVIDER", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"OPENAI_MODEL", "AI_MODEL", "DEFAULT_SHELL",
		"REQUIRE_CONFIRMATION", "USE_COLORS", "VERBOSE_OUTPUT",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	s := FromEnv()

	assert.Equal(t, model.ProviderGemini, s.Provider)
	assert.Equal(t, "gemini-2.0-flash", s.Model)
	assert.Equal(t, model.ShellPowerShell, s.DefaultShell)
	assert.True(t, s.RequireConfirmation)
	assert.True(t, s.UseColors)
	assert.False(t, s.VerboseOutput)
}

func TestFromEnv_OpenAISelection(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	s := FromEnv()

	assert.Equal(t, model.ProviderOpenAI, s.Provider)
	assert.Equal(t, "gpt-4o-mini", s.Model)
	assert.Equal(t, "sk-test", s.APIKey())
}

func TestFromEnv_ModelOverrideWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("AI_MODEL", "gemini-1.5-pro")

	s := FromEnv()

	assert.Equal(t, "gemini-1.5-pro", s.Model)
}

func TestFromEnv_InvalidValuesDegrade(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "skynet")
	t.Setenv("DEFAULT_SHELL", "bash")

	s := FromEnv()

	assert.Equal(t, model.ProviderNone, s.Provider)
	assert.Equal(t, model.ShellPowerShell, s.DefaultShell)
	assert.Empty(t, s.APIKey())
}

func TestFromEnv_BoolParsing(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUIRE_CONFIRMATION", "no")
	t.Setenv("VERBOSE_OUTPUT", "1")
	t.Setenv("USE_COLORS", "garbage")

	s := FromEnv()

	assert.False(t, s.RequireConfirmation)
	assert.True(t, s.VerboseOutput)
	assert.True(t, s.UseColors)
}

func TestProviderConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := FromEnv().ProviderConfig()

	assert.Equal(t, model.ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.APIKey)
	assert.Equal(t, model.ShellPowerShell, cfg.DefaultShell)
}

func TestSaveAndLoadRedactsKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := Defaults()
	s.OpenAIAPIKey = "sk-secret"
	s.GeminiAPIKey = "g-secret"
	require.NoError(t, s.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "***", loaded.OpenAIAPIKey)
	assert.Equal(t, "***", loaded.GeminiAPIKey)
	assert.Equal(t, s.Provider, loaded.Provider)
	assert.Equal(t, s.DefaultShell, loaded.DefaultShell)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
