// Package formatter renders suggestions and execution results for the
// terminal.
package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/siahcodes/quickcmd/pkg/model"
	"gopkg.in/yaml.v3"
)

// DisplaySuggestion formats a suggestion in the requested output format
// (human, json, yaml).
func DisplaySuggestion(s model.Suggestion, format string) error {
	switch format {
	case "json":
		return displayJSON(s)
	case "yaml":
		return displayYAML(s)
	default:
		displayHuman(s)
	}
	return nil
}

func displayJSON(s model.Suggestion) error {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func displayYAML(s model.Suggestion) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func displayHuman(s model.Suggestion) {
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	green.Println("Command Suggestion:")
	white.Printf("  %s\n", s.Command)

	if s.Description != "" {
		fmt.Println()
		green.Println("Description:")
		fmt.Printf("  %s\n", s.Description)
	}

	fmt.Println()
	fmt.Printf("Shell: %s\n", color.CyanString(string(s.Shell)))

	if s.Warning != "" {
		fmt.Println()
		red.Println("⚠️  Warning:")
		yellow.Printf("  %s\n", s.Warning)
	}
}

// DisplayResult reports the outcome of a command execution. Streamed
// output has already been printed live; this summarizes the exit state
// and any stderr text.
func DisplayResult(res model.ExecutionResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	switch {
	case res.TimedOut:
		fmt.Println()
		red.Println("Command timed out.")
	case res.ExitCode != 0:
		fmt.Println()
		red.Printf("Command failed with exit code %d.\n", res.ExitCode)
		if res.Stderr != "" {
			yellow.Println(res.Stderr)
		}
	default:
		fmt.Println()
		green.Println("Command completed successfully.")
	}
}
