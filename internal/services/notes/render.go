// Package notes renders study-notes markdown for display and export.
package notes

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md is safe for concurrent use once built.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// HTML renders notes markdown to an HTML fragment. Raw HTML in the notes is
// not passed through.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return buf.String(), nil
}

// PlainText strips heading markers and turns bullet markers into dashes.
func PlainText(markdown string) string {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			lines[i] = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		case strings.HasPrefix(trimmed, "• "):
			lines[i] = "- " + strings.TrimPrefix(trimmed, "• ")
		}
	}
	return strings.Join(lines, "\n")
}
