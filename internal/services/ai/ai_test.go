// ai_test.go — Tests for both Writer strategies and the fallback chain.
//
// Go Pattern: net/http/httptest spins up a real HTTP server on a random
// local port, so the OpenRouter client is exercised end to end without
// touching the network.
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestReviewHeuristic(t *testing.T) {
	t.Run("many sections suggest combining", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 9; i++ {
			sb.WriteString("## Heading\n\nA paragraph that is long enough to avoid the brevity warning here.\n\n")
		}
		feedback := ReviewHeuristic(sb.String())
		if !contains(feedback, FeedbackTooManySections) {
			t.Errorf("feedback %v missing %q", feedback, FeedbackTooManySections)
		}
	})

	t.Run("eight sections do not", func(t *testing.T) {
		notes := strings.Repeat("## H\n\n"+strings.Repeat("x", 60)+"\n\n", 7)
		feedback := ReviewHeuristic(notes)
		if contains(feedback, FeedbackTooManySections) {
			t.Errorf("unexpected %q for 7 sections", FeedbackTooManySections)
		}
	})

	t.Run("long section", func(t *testing.T) {
		feedback := ReviewHeuristic("## Long\n\n" + strings.Repeat("word ", 120))
		if !contains(feedback, FeedbackLongSections) {
			t.Errorf("feedback %v missing %q", feedback, FeedbackLongSections)
		}
	})

	t.Run("short section", func(t *testing.T) {
		feedback := ReviewHeuristic("## Tiny\n\nToo little.")
		if !contains(feedback, FeedbackShortSections) {
			t.Errorf("feedback %v missing %q", feedback, FeedbackShortSections)
		}
	})

	t.Run("general advice always present", func(t *testing.T) {
		feedback := ReviewHeuristic("")
		if len(feedback) != len(generalFeedback) {
			t.Fatalf("got %d lines, want %d", len(feedback), len(generalFeedback))
		}
	})

	t.Run("never more than ten lines", func(t *testing.T) {
		notes := strings.Repeat("## a\n", 40) + strings.Repeat("z", 600)
		if n := len(ReviewHeuristic(notes)); n > MaxFeedback {
			t.Errorf("got %d lines, want <= %d", n, MaxFeedback)
		}
	})
}

func TestHeuristicGenerateNotes(t *testing.T) {
	text := "Intro\nThis is a fact. This is another."
	got, err := Heuristic{}.GenerateNotes(context.Background(), text)
	if err != nil {
		t.Fatalf("GenerateNotes() error = %v", err)
	}
	if got != segmenter.TextToNotes(text) {
		t.Errorf("GenerateNotes() = %q", got)
	}
}

func TestFeedbackLines(t *testing.T) {
	content := "\n  1. Shorter slides  \n\n2. Better titles\n" + strings.Repeat("more\n", 20)
	lines := feedbackLines(content)
	if len(lines) != MaxFeedback {
		t.Fatalf("got %d lines, want %d", len(lines), MaxFeedback)
	}
	if lines[0] != "1. Shorter slides" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestCleanText(t *testing.T) {
	got := cleanText("--- Page 1 ---\nHello\n\n\nWorld\n--- Page 2 ---\n")
	if got != "Hello\nWorld" {
		t.Errorf("cleanText() = %q", got)
	}
}

// newChatServer returns a test server that answers every request with the
// given status and chat completion content.
func newChatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenRouter(t *testing.T) {
	ctx := context.Background()

	t.Run("notes from the model", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, "# Notes\n\n## Topic\n\nBody.")
		o := NewOpenRouter("test-key", "test-model", time.Second).WithEndpoint(srv.URL)

		notes, err := o.GenerateNotes(ctx, "--- Page 1 ---\nsome text")
		if err != nil {
			t.Fatalf("GenerateNotes() error = %v", err)
		}
		if notes != "# Notes\n\n## Topic\n\nBody." {
			t.Errorf("GenerateNotes() = %q", notes)
		}
	})

	t.Run("feedback from the model", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, "Point one\n\nPoint two\n")
		o := NewOpenRouter("test-key", "test-model", time.Second).WithEndpoint(srv.URL)

		feedback, err := o.ReviewNotes(ctx, "## Notes")
		if err != nil {
			t.Fatalf("ReviewNotes() error = %v", err)
		}
		if len(feedback) != 2 || feedback[1] != "Point two" {
			t.Errorf("ReviewNotes() = %v", feedback)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := newChatServer(t, http.StatusTooManyRequests, "ignored")
		o := NewOpenRouter("test-key", "test-model", time.Second).WithEndpoint(srv.URL)

		if _, err := o.GenerateNotes(ctx, "text"); err == nil {
			t.Error("expected error for 429 response")
		}
	})

	t.Run("empty content is an error", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, "   ")
		o := NewOpenRouter("test-key", "test-model", time.Second).WithEndpoint(srv.URL)

		if _, err := o.GenerateNotes(ctx, "text"); err == nil {
			t.Error("expected error for empty content")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		o := NewOpenRouter("", "test-model", time.Second)
		if _, err := o.ReviewNotes(ctx, "notes"); err != ErrNotConfigured {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})
}

func TestFallback(t *testing.T) {
	ctx := context.Background()
	text := "Intro\nThis is a fact. This is another."

	srv := newChatServer(t, http.StatusInternalServerError, "")
	w := &Fallback{
		Primary:   NewOpenRouter("test-key", "test-model", time.Second).WithEndpoint(srv.URL),
		Secondary: Heuristic{},
	}

	notes, err := w.GenerateNotes(ctx, text)
	if err != nil {
		t.Fatalf("GenerateNotes() error = %v", err)
	}
	if notes != segmenter.TextToNotes(text) {
		t.Errorf("fallback notes = %q", notes)
	}

	feedback, err := w.ReviewNotes(ctx, notes)
	if err != nil {
		t.Fatalf("ReviewNotes() error = %v", err)
	}
	if len(feedback) == 0 || len(feedback) > MaxFeedback {
		t.Errorf("fallback feedback has %d lines", len(feedback))
	}
}

func TestNew(t *testing.T) {
	if _, ok := New("", "m", time.Second).(Heuristic); !ok {
		t.Error("New without key should return Heuristic")
	}
	if _, ok := New("key", "m", time.Second).(*Fallback); !ok {
		t.Error("New with key should return *Fallback")
	}
}
