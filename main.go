package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/siahcodes/quickcmd/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
	verbose bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quickcmd",
		Short: "AI-powered command assistant",
		Long: `quickcmd turns natural language descriptions into runnable PowerShell
and Python commands, lets you review them, and executes them on request.`,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			// Missing .env is fine; settings fall back to defaults.
			_ = godotenv.Load()
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		cmd.NewAskCmd(),
		cmd.NewInteractiveCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose || os.Getenv("VERBOSE_OUTPUT") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(c *cobra.Command, args []string) {
			fmt.Printf("quickcmd version %s\n", version)
		},
	}
}
