// Package ai produces study notes and presentation feedback.
//
// There are two ways to do that: ask a hosted language model through
// OpenRouter, or apply the deterministic heuristics in the segmenter
// package. Both satisfy the Writer interface, and Fallback chains them so
// callers always get an answer without knowing which path produced it.
package ai

import (
	"context"
	"log"
	"time"
)

// MaxFeedback is the most feedback lines returned by any Writer.
const MaxFeedback = 10

// Writer generates notes from document text and reviews finished notes.
//
// Go Pattern: A small interface with two implementations is the Go way of
// expressing "strategy". Callers depend on the interface; main decides
// which implementation to hand them.
type Writer interface {
	GenerateNotes(ctx context.Context, text string) (string, error)
	ReviewNotes(ctx context.Context, notes string) ([]string, error)
}

// Fallback tries Primary first and uses Secondary whenever Primary fails.
type Fallback struct {
	Primary   Writer
	Secondary Writer
}

// GenerateNotes implements Writer.
func (f *Fallback) GenerateNotes(ctx context.Context, text string) (string, error) {
	notes, err := f.Primary.GenerateNotes(ctx, text)
	if err == nil {
		return notes, nil
	}
	log.Printf("⚠️  AI notes unavailable, using heuristic notes: %v", err)
	return f.Secondary.GenerateNotes(ctx, text)
}

// ReviewNotes implements Writer.
func (f *Fallback) ReviewNotes(ctx context.Context, notes string) ([]string, error) {
	feedback, err := f.Primary.ReviewNotes(ctx, notes)
	if err == nil {
		return feedback, nil
	}
	log.Printf("⚠️  AI feedback unavailable, using heuristic feedback: %v", err)
	return f.Secondary.ReviewNotes(ctx, notes)
}

// New picks a Writer based on what is configured. With an API key the
// model is tried first and the heuristics catch every failure; without one
// only the heuristics run.
func New(apiKey, model string, timeout time.Duration) Writer {
	if apiKey == "" {
		return Heuristic{}
	}
	return &Fallback{
		Primary:   NewOpenRouter(apiKey, model, timeout),
		Secondary: Heuristic{},
	}
}
