package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pdfservice "github.com/Shimizu-Technology/doc2deck/internal/services/pdf"
)

var notesCmd = &cobra.Command{
	Use:   "notes <file.pdf>",
	Short: "Extract study notes from a PDF",
	Long: `Notes extracts the text of the selected pages and turns it into markdown
study notes: a "# Study Notes" header followed by one "## " section per
detected heading.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, _ := cmd.Flags().GetString("pages")
		output, _ := cmd.Flags().GetString("output")

		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		if !pdfservice.ValidatePDF(data) {
			return fmt.Errorf("%s does not appear to be a PDF", args[0])
		}

		result, err := pdfservice.Extract(data, pages)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Extracted %d of %d pages (%d words)\n",
			result.Extracted, result.PageCount, result.WordCount)

		notes, err := newWriter().GenerateNotes(cmd.Context(), result.Text)
		if err != nil {
			return err
		}

		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), notes)
			return nil
		}
		if err := os.WriteFile(output, []byte(notes+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Notes written to %s\n", output)
		return nil
	},
}

func init() {
	notesCmd.Flags().String("pages", "all", `pages to read: "all", "3", "1-4" or "1,3,5-7"`)
	notesCmd.Flags().StringP("output", "o", "", "write notes to this file instead of stdout")

	rootCmd.AddCommand(notesCmd)
}
