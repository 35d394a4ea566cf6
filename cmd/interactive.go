package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

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
	interactiveShell string
	interactiveModel string
)

func NewInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Start the interactive command assistant",
		Long: `Start an interactive session: describe what you want in natural
language and quickcmd suggests the matching command, asks for
confirmation, and runs it.`,
		Args: cobra.NoArgs,
		RunE: runInteractive,
	}

	cmd.Flags().StringVar(&interactiveShell, "shell", "", "Default shell (powershell, python)")
	cmd.Flags().StringVar(&interactiveModel, "model", "", "AI model to use (overrides default)")

	return cmd
}

// session holds the per-run state of the interactive loop.
type session struct {
	settings   config.Settings
	engine     *engine.Engine
	powershell *shell.PowerShell
	python     *shell.Python
	byNumber   map[string]string
}

func runInteractive(cmd *cobra.Command, args []string) error {
	settings := config.FromEnv()
	if interactiveModel != "" {
		settings.Model = interactiveModel
	}
	if interactiveShell != "" {
		settings.DefaultShell = model.Shell(strings.ToLower(interactiveShell))
	}

	printLine := func(line string) { fmt.Println(line) }
	ps := shell.NewPowerShell()
	ps.OnLine = printLine
	py := shell.NewPython()
	py.OnLine = printLine

	sess := &session{
		settings:   settings,
		engine:     engine.New(settings.ProviderConfig()),
		powershell: ps,
		python:     py,
	}

	printBanner()
	sess.byNumber = showRecommendations(8)
	sess.warnMissingKey()

	reader := bufio.NewReader(os.Stdin)
	blue := color.New(color.FgBlue)

	for {
		blue.Print("❯ ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			color.Green("\nGoodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			color.Green("Goodbye!")
			return nil
		case "help":
			printHelp()
			continue
		case "settings":
			sess.printSettings()
			continue
		case "recommendations":
			sess.byNumber = showRecommendations(8)
			continue
		}

		if command, ok := sess.byNumber[input]; ok {
			sess.runRecommendation(cmd, command)
			continue
		}

		sess.process(cmd, input)
	}
}

// process generates a suggestion for the request and, on confirmation,
// executes it.
func (s *session) process(cmd *cobra.Command, request string) {
	sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	sp.Suffix = " Thinking..."
	sp.Start()
	suggestion := s.engine.Generate(cmd.Context(), request)
	sp.Stop()

	_ = formatter.DisplaySuggestion(suggestion, "human")

	if s.settings.RequireConfirmation {
		if promptChoice(suggestion.Command) != choiceRun {
			fmt.Println()
			return
		}
	}
	s.execute(cmd, suggestion.Shell, suggestion.Command)
	fmt.Println()
}

// runRecommendation executes a numbered recommendation after the usual
// confirmation.
func (s *session) runRecommendation(cmd *cobra.Command, command string) {
	color.Cyan("Selected command: %s", command)
	fmt.Printf("%s %s\n", color.GreenString("Command:"), command)
	fmt.Printf("%s Direct execution of recommended command\n", color.GreenString("Description:"))

	if promptChoice(command) != choiceRun {
		fmt.Println()
		return
	}
	s.execute(cmd, model.ShellPowerShell, command)
	fmt.Println()
}

func (s *session) execute(cmd *cobra.Command, sh model.Shell, command string) {
	color.Green("Executing command...")

	var ex shell.Executor
	switch sh {
	case model.ShellPython:
		ex = s.python
	default:
		ex = s.powershell
	}

	if !ex.Available() {
		color.Red("%s is not available on this system.", ex.Name())
		return
	}

	cyan := color.New(color.FgCyan)
	cyan.Printf("Executing in %s:\n", ex.Name())
	color.Yellow("> %s\n", command)
	fmt.Println()

	result, err := ex.Run(cmd.Context(), command)
	if err != nil {
		color.Red("Error executing command: %v", err)
		return
	}
	formatter.DisplayResult(result)
}

func (s *session) warnMissingKey() {
	if s.settings.Provider == model.ProviderNone || s.settings.APIKey() != "" {
		return
	}
	keyName := "OPENAI_API_KEY"
	if s.settings.Provider == model.ProviderGemini {
		keyName = "GEMINI_API_KEY"
	}
	color.Red("⚠️  %s API key not configured!", strings.ToUpper(string(s.settings.Provider)))
	color.Yellow("Please add to .env file: %s=your_api_key_here\n", keyName)
}

func (s *session) printSettings() {
	green := color.New(color.FgGreen)
	green.Println("Current Settings:")
	fmt.Printf("  AI Provider: %s\n", color.CyanString(strings.ToUpper(string(s.settings.Provider))))
	fmt.Printf("  AI Model: %s\n", color.CyanString(s.settings.Model))
	fmt.Printf("  Default Shell: %s\n", color.CyanString(string(s.settings.DefaultShell)))

	configured := "No"
	if s.settings.APIKey() != "" {
		configured = "Yes"
	}
	fmt.Printf("  API Key Configured: %s\n", color.CyanString(configured))

	psAvailable := "No"
	if s.powershell.Available() {
		psAvailable = "Yes"
	}
	fmt.Printf("  PowerShell Available: %s\n\n", color.CyanString(psAvailable))
}

func printBanner() {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("╔══════════════════════════════════════════════════════════════════╗")
	cyan.Println("║                    QuickCommand AI Assistant                     ║")
	cyan.Println("║              Natural Language → Smart Commands                   ║")
	cyan.Println("╚══════════════════════════════════════════════════════════════════╝")
	color.Yellow("Type your command description and I'll suggest the right command!")
	color.Yellow("Type 'exit' or 'quit' to leave, 'help' for assistance.\n")
}

func printHelp() {
	green := color.New(color.FgGreen)
	green.Println("QuickCommand AI Assistant Help")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println("Examples of natural language commands:")
	for _, example := range []string{
		"command for remote group policy update",
		"list all running services",
		"install python package for web scraping",
		"create a new directory and navigate to it",
		"check disk space on C drive",
	} {
		fmt.Printf("  • %s\n", color.CyanString("'%s'", example))
	}
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  • %s - Show this help message\n", color.MagentaString("help"))
	fmt.Printf("  • %s - Show new command recommendations\n", color.MagentaString("recommendations"))
	fmt.Printf("  • %s - Show current settings\n", color.MagentaString("settings"))
	fmt.Printf("  • %s - Exit the assistant\n", color.MagentaString("exit/quit"))
	fmt.Println()
}
