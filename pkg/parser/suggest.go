// Package parser normalizes raw backend output into suggestion records.
package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/siahcodes/quickcmd/pkg/model"
)

// ErrNoCommand is returned when neither the structured nor the
// line-oriented parse yields a non-empty command.
var ErrNoCommand = errors.New("no command found in response")

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

// ParseSuggestion converts raw backend text into a Suggestion. It tries
// a strict JSON decode first, then falls back to line-oriented
// extraction for backends that ignore the requested output format.
// defaultShell fills in the shell when the response does not name one.
func ParseSuggestion(raw string, defaultShell model.Shell) (*model.Suggestion, error) {
	cleaned := stripFences(raw)

	if s, isJSON := parseJSON(cleaned, defaultShell); isJSON {
		// A decodable object that lacks a usable command is a rejection,
		// not a reason to re-read the JSON text as free text.
		if s == nil {
			return nil, ErrNoCommand
		}
		return s, nil
	}
	if s, ok := parseText(cleaned, defaultShell); ok {
		return s, nil
	}
	return nil, ErrNoCommand
}

// parseJSON handles the structured path: a JSON object with the keys
// command/description/shell/warning. isJSON reports whether the text
// decoded as an object at all; a nil suggestion with isJSON=true means
// the object had an empty command after trimming.
func parseJSON(text string, defaultShell model.Shell) (s *model.Suggestion, isJSON bool) {
	var decoded model.Suggestion
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, false
	}
	decoded.Command = strings.TrimSpace(decoded.Command)
	if decoded.Command == "" {
		return nil, true
	}
	if !decoded.Shell.IsValid() {
		decoded.Shell = defaultShell
	}
	return &decoded, true
}

// parseText handles free-form responses. Lines labelled Command: or
// Description: (case-insensitive) populate the matching field; the
// first non-empty, non-comment line seen before any Command: label is
// adopted as the command.
func parseText(text string, defaultShell model.Shell) (*model.Suggestion, bool) {
	var command, description string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "command:"):
			command = strings.TrimSpace(line[len("command:"):])
		case strings.HasPrefix(lower, "description:"):
			description = strings.TrimSpace(line[len("description:"):])
		case command == "" && line != "" && !strings.HasPrefix(line, "#"):
			command = line
		}
	}

	if command == "" {
		return nil, false
	}
	return &model.Suggestion{
		Command:     command,
		Description: description,
		Shell:       defaultShell,
	}, true
}

// stripFences removes markdown code fences such as ```json ... ``` so
// the JSON path can decode fenced responses.
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
