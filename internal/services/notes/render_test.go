package notes

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	got, err := HTML("# Study Notes\n\n## Topic\n\nSome text.\n\n- one\n- two\n")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	for _, want := range []string{
		`<h1 id="study-notes">Study Notes</h1>`,
		`<h2 id="topic">Topic</h2>`,
		"<p>Some text.</p>",
		"<li>one</li>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() missing %q in:\n%s", want, got)
		}
	}
}

func TestHTML_DropsRawHTML(t *testing.T) {
	got, err := HTML("<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %s", got)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"headings", "# Study Notes\n\n## Topic", "Study Notes\n\nTopic"},
		{"bullets", "• first\n- second", "- first\n- second"},
		{"prose untouched", "Plain text.", "Plain text."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
