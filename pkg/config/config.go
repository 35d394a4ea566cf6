// Package config builds the application settings consumed by the CLI
// layer. Core packages receive an immutable model.ProviderConfig from
// here and never touch the environment themselves.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/siahcodes/quickcmd/pkg/model"
	"gopkg.in/yaml.v3"
)

// Settings holds everything the CLI layer needs: backend selection,
// credentials, shell defaults and presentation flags.
type Settings struct {
	Provider     model.Provider `yaml:"ai_provider"`
	OpenAIAPIKey string         `yaml:"openai_api_key,omitempty"`
	GeminiAPIKey string         `yaml:"gemini_api_key,omitempty"`
	Model        string         `yaml:"ai_model"`
	OpenAIModel  string         `yaml:"openai_model"`
	DefaultShell model.Shell    `yaml:"default_shell"`

	RequireConfirmation bool `yaml:"require_confirmation"`
	UseColors           bool `yaml:"use_colors"`
	VerboseOutput       bool `yaml:"verbose_output"`
}

// Defaults returns the baseline settings before any environment input.
func Defaults() Settings {
	return Settings{
		Provider:            model.ProviderGemini,
		Model:               "gemini-2.0-flash",
		OpenAIModel:         "gpt-3.5-turbo",
		DefaultShell:        model.ShellPowerShell,
		RequireConfirmation: true,
		UseColors:           true,
	}
}

// FromEnv builds settings from the process environment, validating as
// it goes. Invalid values degrade to safe defaults with a logged
// warning instead of failing startup. Loading a .env file, if any, is
// the caller's job (godotenv in the CLI layer).
func FromEnv() Settings {
	s := Defaults()

	if v := os.Getenv("AI_PROVIDER"); v != "" {
		s.Provider = model.Provider(strings.ToLower(v))
	}
	s.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	s.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		s.OpenAIModel = v
	}

	switch {
	case os.Getenv("AI_MODEL") != "":
		s.Model = os.Getenv("AI_MODEL")
	case s.Provider == model.ProviderOpenAI:
		s.Model = s.OpenAIModel
	}

	if v := os.Getenv("DEFAULT_SHELL"); v != "" {
		s.DefaultShell = model.Shell(strings.ToLower(v))
	}

	s.RequireConfirmation = envBool("REQUIRE_CONFIRMATION", s.RequireConfirmation)
	s.UseColors = envBool("USE_COLORS", s.UseColors)
	s.VerboseOutput = envBool("VERBOSE_OUTPUT", s.VerboseOutput)

	return s.validate()
}

// validate degrades unknown provider or shell values to the safe
// defaults, mirroring the confirm-nothing startup contract.
func (s Settings) validate() Settings {
	switch s.Provider {
	case model.ProviderOpenAI, model.ProviderGemini, model.ProviderNone:
	default:
		log.Warn().Str("provider", string(s.Provider)).Msg("invalid AI provider, using fallback-only mode")
		s.Provider = model.ProviderNone
	}
	if !s.DefaultShell.IsValid() {
		log.Warn().Str("shell", string(s.DefaultShell)).Msg("invalid shell, using powershell")
		s.DefaultShell = model.ShellPowerShell
	}
	return s
}

// APIKey returns the key for the selected provider.
func (s Settings) APIKey() string {
	switch s.Provider {
	case model.ProviderOpenAI:
		return s.OpenAIAPIKey
	case model.ProviderGemini:
		return s.GeminiAPIKey
	default:
		return ""
	}
}

// ProviderConfig converts the settings into the immutable configuration
// value handed to the suggestion engine.
func (s Settings) ProviderConfig() model.ProviderConfig {
	return model.ProviderConfig{
		Provider:     s.Provider,
		Model:        s.Model,
		APIKey:       s.APIKey(),
		DefaultShell: s.DefaultShell,
	}
}

// Redacted returns a copy with credentials masked, for display and
// persistence.
func (s Settings) Redacted() Settings {
	if s.OpenAIAPIKey != "" {
		s.OpenAIAPIKey = "***"
	}
	if s.GeminiAPIKey != "" {
		s.GeminiAPIKey = "***"
	}
	return s
}

// SaveToFile writes the redacted settings as YAML.
func (s Settings) SaveToFile(path string) error {
	data, err := yaml.Marshal(s.Redacted())
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LoadFromFile reads settings from a YAML file, validating the result.
func LoadFromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s.validate(), nil
}

func envBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}
