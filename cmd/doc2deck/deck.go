package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/doc2deck/internal/services/ai"
	"github.com/Shimizu-Technology/doc2deck/internal/services/deck"
	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

var deckCmd = &cobra.Command{
	Use:   "deck <notes.md>",
	Short: "Render notes into a PDF slide deck and print review feedback",
	Long: `Deck renders a cover slide plus one slide per notes section into a
10in x 7.5in PDF, then prints feedback on the notes. Long paragraphs keep
only their first three sentences; the number cut is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		noFeedback, _ := cmd.Flags().GetBool("no-feedback")

		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		notes := string(data)
		slides := segmenter.NotesToSlides(notes)

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		if err := deck.Render(slides, f); err != nil {
			f.Close()
			os.Remove(output)
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Deck written to %s (%d slides)\n", output, len(slides)+1)
		if trimmed := segmenter.DroppedSentences(slides); trimmed > 0 {
			fmt.Fprintf(out, "Warning: %d sentence(s) from long paragraphs were not rendered\n", trimmed)
		}

		if noFeedback {
			return nil
		}
		feedback, err := newWriter().ReviewNotes(cmd.Context(), notes)
		if err != nil {
			feedback = ai.ReviewHeuristic(notes)
		}
		fmt.Fprintln(out, "\nFeedback:")
		for _, line := range feedback {
			fmt.Fprintf(out, "  - %s\n", line)
		}
		return nil
	},
}

func init() {
	deckCmd.Flags().StringP("output", "o", "presentation.pdf", "deck file to write")
	deckCmd.Flags().Bool("no-feedback", false, "skip the notes review")

	rootCmd.AddCommand(deckCmd)
}
