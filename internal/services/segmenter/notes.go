// Package segmenter turns extracted document text into study notes and
// study notes into slide records.
//
// Everything here is a pure function over strings: no I/O, no shared state.
// The AI service uses it as the deterministic fallback, and the deck
// renderer uses it to lay out slides.
package segmenter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NotesHeader is the first line of every generated notes document.
const NotesHeader = "# Study Notes"

// sentencesPerParagraph is how many sentences are grouped into one paragraph.
const sentencesPerParagraph = 4

var (
	// pageMarker matches the separators the PDF extractor puts between pages.
	pageMarker = regexp.MustCompile(`--- Page \d+ ---`)

	// leadingBullet matches a bullet marker at the start of a content line.
	// \p{Zs} covers the no-break spaces PDF extractors emit after "•".
	leadingBullet = regexp.MustCompile(`^[•\-\*][\s\p{Zs}]*`)

	// listPrefixes disqualify a line from being a heading.
	listPrefixes = []string{"•", "-", "*", "1.", "2.", "3."}
)

// Section is one heading and the content lines collected under it.
type Section struct {
	Heading string
	Lines   []string
}

// Paragraphs returns the section body grouped into paragraphs.
func (s Section) Paragraphs() []string {
	return GroupSentences(s.Lines)
}

// StripPageMarkers removes "--- Page N ---" separators from text.
func StripPageMarkers(text string) string {
	return pageMarker.ReplaceAllString(text, "")
}

// IsHeading reports whether a trimmed line looks like a section title:
// between 4 and 79 characters, no trailing period, not a list item, and
// starting with a capital letter (or "Chapter"/"Section").
func IsHeading(line string) bool {
	n := utf8.RuneCountInString(line)
	if n <= 3 || n >= 80 {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}
	for _, p := range listPrefixes {
		if strings.HasPrefix(line, p) {
			return false
		}
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(first) ||
		strings.HasPrefix(line, "Chapter") ||
		strings.HasPrefix(line, "Section")
}

// ParseSections splits raw text into sections. Sections without any content
// lines are dropped, and so is content that appears before the first heading.
func ParseSections(text string) []Section {
	var (
		sections []Section
		current  Section
	)

	flush := func() {
		if current.Heading != "" && len(current.Lines) > 0 {
			sections = append(sections, current)
		}
	}

	for _, raw := range strings.Split(StripPageMarkers(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if IsHeading(line) {
			flush()
			current = Section{Heading: line}
			continue
		}

		if utf8.RuneCountInString(line) > 10 {
			current.Lines = append(current.Lines, leadingBullet.ReplaceAllString(line, ""))
		}
	}
	flush()

	return sections
}

// GroupSentences joins content lines, splits them on periods and groups the
// resulting sentences four at a time. Each group ends with a period.
func GroupSentences(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	var sentences []string
	for _, s := range strings.Split(strings.Join(lines, " "), ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	var paragraphs []string
	for start := 0; start < len(sentences); start += sentencesPerParagraph {
		end := min(start+sentencesPerParagraph, len(sentences))
		paragraphs = append(paragraphs, strings.Join(sentences[start:end], ". ")+".")
	}
	return paragraphs
}

// TextToNotes converts extracted document text into markdown study notes:
// a "# Study Notes" header followed by one "## heading" block per section.
func TextToNotes(text string) string {
	var sb strings.Builder
	sb.WriteString(NotesHeader)
	sb.WriteString("\n\n")

	for _, s := range ParseSections(text) {
		sb.WriteString("## ")
		sb.WriteString(s.Heading)
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(s.Paragraphs(), "\n\n"))
		sb.WriteString("\n\n")
	}

	return sb.String()
}
