package model

// Shell identifies the execution target for a suggested command.
type Shell string

const (
	ShellPowerShell Shell = "powershell"
	ShellPython     Shell = "python"
)

// IsValid reports whether s is one of the supported shells.
func (s Shell) IsValid() bool {
	return s == ShellPowerShell || s == ShellPython
}

// Provider identifies the AI backend used to generate suggestions.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderNone   Provider = "none"
)

// ProviderConfig is the immutable backend configuration handed to the
// suggestion engine. It is built once by the CLI layer; core packages
// never read the environment themselves.
type ProviderConfig struct {
	Provider     Provider
	Model        string
	APIKey       string
	DefaultShell Shell
}

// Suggestion is the canonical record describing a proposed command.
// A Suggestion with an empty Command is never handed to callers.
type Suggestion struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Shell       Shell  `json:"shell"`
	Warning     string `json:"warning,omitempty"`
}

// ExecutionResult reports the outcome of running one command or script.
// Created fresh per call and never persisted.
type ExecutionResult struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	TimedOut bool   `json:"timed_out"`
}
