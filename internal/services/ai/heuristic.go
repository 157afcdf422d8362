package ai

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

// Feedback messages produced by the heuristic reviewer.
const (
	FeedbackTooManySections = "Consider combining related sections to reduce the number of slides"
	FeedbackLongSections    = "Some sections are too long - break them into multiple slides"
	FeedbackShortSections   = "Some sections are too brief - consider adding more detail or combining with other sections"
)

// generalFeedback is appended to every heuristic review.
var generalFeedback = []string{
	"Ensure each slide has a clear, descriptive title",
	"Use consistent formatting throughout the presentation",
	"Consider adding examples or illustrations where appropriate",
}

const (
	maxSections     = 8
	longSectionLen  = 500
	shortSectionLen = 50
)

// Heuristic is the offline Writer. It never returns an error.
type Heuristic struct{}

// GenerateNotes implements Writer using the segmenter.
func (Heuristic) GenerateNotes(_ context.Context, text string) (string, error) {
	return segmenter.TextToNotes(text), nil
}

// ReviewNotes implements Writer with fixed checks on section count and size.
func (Heuristic) ReviewNotes(_ context.Context, notes string) ([]string, error) {
	return ReviewHeuristic(notes), nil
}

// ReviewHeuristic inspects the "##" sections of notes and returns at most
// MaxFeedback suggestions.
func ReviewHeuristic(notes string) []string {
	var feedback []string

	sections := strings.Split(notes, "##")
	if len(sections) > maxSections {
		feedback = append(feedback, FeedbackTooManySections)
	}

	var hasLong, hasShort bool
	for _, s := range sections {
		if utf8.RuneCountInString(s) > longSectionLen {
			hasLong = true
		}
		trimmed := strings.TrimSpace(s)
		if trimmed != "" && utf8.RuneCountInString(trimmed) < shortSectionLen {
			hasShort = true
		}
	}
	if hasLong {
		feedback = append(feedback, FeedbackLongSections)
	}
	if hasShort {
		feedback = append(feedback, FeedbackShortSections)
	}

	feedback = append(feedback, generalFeedback...)
	if len(feedback) > MaxFeedback {
		feedback = feedback[:MaxFeedback]
	}
	return feedback
}
