// Package safety flags destructive command patterns in suggestions.
package safety

import (
	"strings"

	"github.com/siahcodes/quickcmd/pkg/model"
)

// DestructiveWarning is the standard notice attached to commands that
// match a destructive pattern.
const DestructiveWarning = "This command could be destructive. Please review carefully!"

// destructivePatterns is the fixed deny-list of command fragments that
// always earn a warning: recursive root deletes and low-level
// format/partition tools. Matching is advisory; execution is never
// blocked here.
var destructivePatterns = []string{
	"rm -rf /",
	"del /f /s /q",
	"format",
	"fdisk",
	"mkfs",
	"diskpart",
}

// Validate normalizes a suggestion's fields and overwrites its warning
// when the command contains a destructive fragment. A clean command
// leaves any pre-existing warning untouched.
func Validate(s model.Suggestion) model.Suggestion {
	s.Command = strings.TrimSpace(s.Command)
	s.Description = strings.TrimSpace(s.Description)
	if IsDestructive(s.Command) {
		s.Warning = DestructiveWarning
	}
	return s
}

// IsDestructive reports whether the lower-cased command contains any
// deny-listed fragment.
func IsDestructive(command string) bool {
	if command == "" {
		return false
	}
	lower := strings.ToLower(command)
	for _, pattern := range destructivePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
