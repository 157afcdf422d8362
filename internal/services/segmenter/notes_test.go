// notes_test.go — Unit tests for the text → notes direction.
package segmenter

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"capitalized short line", "Intro", true},
		{"chapter prefix", "Chapter 3 Overview", true},
		{"too short", "Abc", false},
		{"lowercase start", "chapter three", false},
		{"ends with period", "This is a sentence.", false},
		{"dash bullet", "- Bullet Item", false},
		{"dot bullet", "• Bullet Item", false},
		{"star bullet", "* Bullet Item", false},
		{"numbered list", "1. First Step", false},
		{"numbered list beyond three", "4. Fourth Step", false},
		{"non-ascii uppercase", "Économie", true},
		{"79 characters", "A" + strings.Repeat("b", 78), true},
		{"80 characters", "A" + strings.Repeat("b", 79), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeading(tt.line); got != tt.want {
				t.Errorf("IsHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestGroupSentences(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "fewer than four sentences",
			lines: []string{"One fact. Two facts."},
			want:  []string{"One fact. Two facts."},
		},
		{
			name:  "five sentences make two groups",
			lines: []string{"This is a fact. This is another. A third. A fourth. A fifth."},
			want:  []string{"This is a fact. This is another. A third. A fourth.", "A fifth."},
		},
		{
			name:  "lines are joined before splitting",
			lines: []string{"First half of a sentence", "second half. Next one."},
			want:  []string{"First half of a sentence second half. Next one."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupSentences(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GroupSentences() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

// TestGroupSentences_GroupCount checks that k sentences give ceil(k/4)
// groups, all but the last holding exactly four sentences.
func TestGroupSentences_GroupCount(t *testing.T) {
	for k := 1; k <= 13; k++ {
		var sb strings.Builder
		for i := 0; i < k; i++ {
			sb.WriteString("Sentence here. ")
		}

		groups := GroupSentences([]string{sb.String()})
		wantGroups := (k + 3) / 4
		if len(groups) != wantGroups {
			t.Fatalf("k=%d: got %d groups, want %d", k, len(groups), wantGroups)
		}
		for i, g := range groups[:len(groups)-1] {
			if n := strings.Count(g, "."); n != 4 {
				t.Errorf("k=%d: group %d has %d sentences, want 4", k, i, n)
			}
		}
	}
}

func TestTextToNotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input yields only the header",
			text: "",
			want: "# Study Notes\n\n",
		},
		{
			name: "one section with two paragraph groups",
			text: "Intro\nThis is a fact. This is another. A third. A fourth. A fifth.",
			want: "# Study Notes\n\n## Intro\n\n" +
				"This is a fact. This is another. A third. A fourth.\n\nA fifth.\n\n",
		},
		{
			name: "page markers are removed",
			text: "--- Page 1 ---\nOverview\nThe system converts documents.\n--- Page 2 ---\nIt renders slides too.",
			want: "# Study Notes\n\n## Overview\n\nThe system converts documents. It renders slides too.\n\n",
		},
		{
			name: "content before the first heading is dropped",
			text: "orphan content without a heading.\nSummary\nThe real content lives here.",
			want: "# Study Notes\n\n## Summary\n\nThe real content lives here.\n\n",
		},
		{
			name: "headings without content are skipped",
			text: "Empty Heading\nFilled Heading\nSomething worth noting.",
			want: "# Study Notes\n\n## Filled Heading\n\nSomething worth noting.\n\n",
		},
		{
			name: "bullet markers are stripped from content",
			text: "Topics\n• bullets are common in slides\n- dashes appear as well",
			want: "# Study Notes\n\n## Topics\n\nbullets are common in slides dashes appear as well.\n\n",
		},
		{
			name: "no-break space after a bullet is stripped",
			text: "Topics\n• bullets are common in slides\n•\u00a0dashes appear as well",
			want: "# Study Notes\n\n## Topics\n\nbullets are common in slides dashes appear as well.\n\n",
		},
		{
			name: "short lines are ignored",
			text: "Heads Up\ntoo short\nThis line is long enough to keep.",
			want: "# Study Notes\n\n## Heads Up\n\nThis line is long enough to keep.\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextToNotes(tt.text); got != tt.want {
				t.Errorf("TextToNotes() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}
