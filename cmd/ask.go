package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/siahcodes/quickcmd/pkg/config"
	"github.com/siahcodes/quickcmd/pkg/engine"
	"github.com/siahcodes/quickcmd/pkg/formatter"
	"github.com/siahcodes/quickcmd/pkg/model"
	"github.com/siahcodes/quickcmd/pkg/shell"
	"github.com/spf13/cobra"
)

var (
	askShell        string
	askModel        string
	askProvider     string
	askOutputFormat string
	askYes          bool
)

func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask DESCRIPTION",
		Short: "Turn a natural language description into a command",
		Long: `Generate a command suggestion from a natural language description,
review it, and optionally execute it.

Examples:
  # Suggest a command and confirm before running
  quickcmd ask "list all running services"

  # Prefer Python suggestions
  quickcmd ask "install web scraping packages" --shell python

  # Print the suggestion as JSON without executing
  quickcmd ask "check disk space" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askShell, "shell", "", "Default shell (powershell, python)")
	cmd.Flags().StringVar(&askModel, "model", "", "AI model to use (overrides default)")
	cmd.Flags().StringVar(&askProvider, "provider", "", "AI provider (openai, gemini). Defaults to AI_PROVIDER from env")
	cmd.Flags().StringVarP(&askOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&askYes, "yes", "y", false, "Execute without confirmation")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	request := args[0]

	settings := config.FromEnv()
	if askProvider != "" {
		settings.Provider = model.Provider(strings.ToLower(askProvider))
	}
	if askModel != "" {
		settings.Model = askModel
	}
	if askShell != "" {
		settings.DefaultShell = model.Shell(strings.ToLower(askShell))
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Thinking..."
	s.Start()

	eng := engine.New(settings.ProviderConfig())
	suggestion := eng.Generate(cmd.Context(), request)
	s.Stop()

	if err := formatter.DisplaySuggestion(suggestion, askOutputFormat); err != nil {
		return err
	}

	// Structured output is for piping; never execute in that mode.
	if askOutputFormat != "human" {
		return nil
	}

	if !askYes {
		switch promptChoice(suggestion.Command) {
		case choiceRun:
		case choiceCopy, choiceCancel:
			return nil
		}
	}

	return executeSuggestion(cmd.Context(), suggestion)
}

type choice int

const (
	choiceRun choice = iota
	choiceCancel
	choiceCopy
)

// promptChoice asks the user whether to execute, cancel, or copy the
// suggested command to the clipboard.
func promptChoice(command string) choice {
	yellow := color.New(color.FgYellow)
	reader := bufio.NewReader(os.Stdin)

	for {
		yellow.Print("\nExecute this command? (y/n/copy): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			yellow.Println("\nCommand cancelled.")
			return choiceCancel
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return choiceRun
		case "n", "no":
			yellow.Println("Command cancelled.")
			return choiceCancel
		case "copy":
			if err := clipboard.WriteAll(command); err != nil {
				yellow.Printf("Clipboard not available: %v\n", err)
			} else {
				color.Green("Command copied to clipboard!")
			}
			return choiceCopy
		default:
			color.Red("Please enter 'y' (yes), 'n' (no), or 'copy'.")
		}
	}
}

// executeSuggestion runs the suggestion in the executor matching its
// shell, streaming output live.
func executeSuggestion(ctx context.Context, s model.Suggestion) error {
	color.Green("Executing command...")

	ex := executorFor(s.Shell)
	if !ex.Available() {
		color.Red("%s is not available on this system.", ex.Name())
		return nil
	}

	cyan := color.New(color.FgCyan)
	cyan.Printf("Executing in %s:\n", ex.Name())
	color.Yellow("> %s\n", s.Command)
	fmt.Println()

	result, err := ex.Run(ctx, s.Command)
	if err != nil {
		color.Red("Error executing command: %v", err)
		return nil
	}

	formatter.DisplayResult(result)
	return nil
}

// executorFor builds the executor for the given shell, wiring live
// stdout lines to the terminal.
func executorFor(sh model.Shell) shell.Executor {
	printLine := func(line string) { fmt.Println(line) }
	if sh == model.ShellPython {
		p := shell.NewPython()
		p.OnLine = printLine
		return p
	}
	ps := shell.NewPowerShell()
	ps.OnLine = printLine
	return ps
}
