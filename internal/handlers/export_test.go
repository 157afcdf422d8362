// export_test.go contains tests for the export helpers.
//
// Go Pattern: Table-driven tests are the standard Go testing pattern.
// You define a slice of test cases (each with a name, inputs, and expected
// outputs), then loop through them.
package handlers

import (
	"strings"
	"testing"
)

// TestSanitizeFilename verifies filename sanitization.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean filename",
			input:    "Biology Notes",
			expected: "Biology Notes",
		},
		{
			name:     "upload default title",
			input:    "cells.pdf - 2024-05-01 09:30",
			expected: "cells.pdf - 2024-05-01 09-30",
		},
		{
			name:     "slashes and colons",
			input:    "Part 1/2: The Beginning",
			expected: "Part 1-2- The Beginning",
		},
		{
			name:     "special characters",
			input:    "What is Go? <A Guide>",
			expected: "What is Go- -A Guide-",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "long title gets truncated",
			input:    strings.Repeat("a", 200),
			expected: strings.Repeat("a", 100),
		},
		{
			name:     "truncation keeps whole characters",
			input:    strings.Repeat("é", 150),
			expected: strings.Repeat("é", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHTMLPage_EscapesTitle(t *testing.T) {
	page := htmlPage("<b>Notes</b>", "<h1>x</h1>")

	if !strings.Contains(page, "<title>&lt;b&gt;Notes&lt;/b&gt;</title>") {
		t.Errorf("title not escaped:\n%s", page)
	}
	if !strings.Contains(page, "<h1>x</h1>") {
		t.Errorf("body missing:\n%s", page)
	}
}
