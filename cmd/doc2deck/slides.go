package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

var slidesCmd = &cobra.Command{
	Use:   "slides <notes.md>",
	Short: "Print the slides a notes file produces, as JSON",
	Long: `Slides parses markdown notes into slide records and prints them as JSON.
Slides with more than 6 items are split into "(Part N)" continuations.
Use --styled to include how each item would be rendered. Pass "-" to read
notes from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		styled, _ := cmd.Flags().GetBool("styled")

		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		slides := segmenter.NotesToSlides(string(data))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		if !styled {
			return enc.Encode(slides)
		}
		views := make([]models.SlideView, len(slides))
		for i, s := range slides {
			views[i] = models.SlideView{Slide: s, Body: segmenter.StyleSlide(s)}
		}
		return enc.Encode(views)
	},
}

func init() {
	slidesCmd.Flags().Bool("styled", false, "include the styled paragraphs for each item")

	rootCmd.AddCommand(slidesCmd)
}
