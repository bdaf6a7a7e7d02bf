package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/lecture-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lecture-api",
	Short: "Lecture Relay API server",
	Long: `Lecture Relay API - Real-time lecture translation backend

This API relays short audio chunks from a browser to a hosted
speech-to-text translation provider and persists the per-chunk English
transcripts against lecture sessions.

Features:
  • Audio chunk translation via Groq Whisper
  • Lecture session management with ordered transcript chunks
  • Automatic session titles via LLM
  • Transcript enhancement for closed sessions`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
