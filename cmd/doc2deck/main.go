// Package main is the entry point for the doc2deck CLI.
//
// The CLI runs the same pipeline as the API server, without a database:
// extract notes from a PDF, preview the slides those notes produce, and
// render them into a deck.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/doc2deck/internal/config"
	"github.com/Shimizu-Technology/doc2deck/internal/services/ai"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the doc2deck CLI.
var rootCmd = &cobra.Command{
	Use:   "doc2deck",
	Short: "Turn PDF documents into study notes and slide decks",
	Long: `doc2deck extracts text from a PDF, writes structured study notes from it
and renders those notes into a slide deck with review feedback.

With OPENROUTER_API_KEY set (in the environment or a .env file) notes and
feedback come from the configured model; otherwise, or whenever the model
call fails, deterministic heuristics are used.`,
	SilenceUsage: true,
}

// newWriter builds the same notes/feedback strategy the server uses.
func newWriter() ai.Writer {
	cfg := config.LoadAI()
	return ai.New(cfg.APIKey, cfg.Model, cfg.Timeout)
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
