package segmenter

import (
	"fmt"
	"strings"
	"testing"
)

func TestStyleItem(t *testing.T) {
	tests := []struct {
		name        string
		item        string
		wantKind    Kind
		wantParas   int
		wantDropped int
	}{
		{"short bullet", "First", KindBullet, 1, 0},
		{"short with sentence break is prose", "One. Two", KindProse, 1, 0},
		{"99 characters is a bullet", strings.Repeat("a", 99), KindBullet, 1, 0},
		{"100 characters is prose", strings.Repeat("a", 100), KindProse, 1, 0},
		{"200 characters stays whole", strings.Repeat("b. ", 66) + "bb", KindProse, 1, 0},
		{"long item without sentence breaks stays whole", strings.Repeat("c", 250), KindProse, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StyleItem(tt.item)
			if len(got.Paragraphs) != tt.wantParas {
				t.Fatalf("got %d paragraphs, want %d", len(got.Paragraphs), tt.wantParas)
			}
			if got.Paragraphs[0].Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", got.Paragraphs[0].Kind, tt.wantKind)
			}
			if got.Dropped != tt.wantDropped {
				t.Errorf("dropped = %d, want %d", got.Dropped, tt.wantDropped)
			}
		})
	}
}

// TestStyleItem_LongProseKeepsThreeSentences covers the known data loss:
// a long item is cut down to its first three sentences.
func TestStyleItem_LongProseKeepsThreeSentences(t *testing.T) {
	sentences := make([]string, 5)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Sentence %d %s", i+1, strings.Repeat("x", 40))
	}
	item := strings.Join(sentences, ". ") + "."
	if len(item) <= 200 {
		t.Fatalf("test item too short: %d", len(item))
	}

	got := StyleItem(item)

	if len(got.Paragraphs) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(got.Paragraphs))
	}
	if got.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", got.Dropped)
	}

	var rendered strings.Builder
	for i, p := range got.Paragraphs {
		if p.Kind != KindProse || !p.Split {
			t.Errorf("paragraph %d = %+v, want split prose", i, p)
		}
		if !strings.HasSuffix(p.Text, ".") {
			t.Errorf("paragraph %d missing trailing period: %q", i, p.Text)
		}
		rendered.WriteString(p.Text)
	}

	for i := 1; i <= 3; i++ {
		if !strings.Contains(rendered.String(), fmt.Sprintf("Sentence %d", i)) {
			t.Errorf("sentence %d missing from output", i)
		}
	}
	for i := 4; i <= 5; i++ {
		if strings.Contains(rendered.String(), fmt.Sprintf("Sentence %d", i)) {
			t.Errorf("sentence %d should have been dropped", i)
		}
	}
}

func TestDroppedSentences(t *testing.T) {
	long := strings.Repeat("Words words words words words words. ", 8)
	slides := []Slide{
		{Title: "A", Content: []string{"short", long}},
		{Title: "B", Content: []string{long}},
	}

	// Each long item splits into 9 pieces on ". " and keeps 3.
	if got := DroppedSentences(slides); got != 12 {
		t.Errorf("DroppedSentences() = %d, want 12", got)
	}
}
