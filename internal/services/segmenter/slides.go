package segmenter

import (
	"fmt"
	"strings"
)

const (
	// MaxSlideItems is the most content items a slide may carry before it
	// is split into parts.
	MaxSlideItems = 6
	// PartSize is the number of items per continuation slide.
	PartSize = 4
)

// Slide is one slide record: a title and its ordered content items.
type Slide struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// bulletPrefixes mark a notes line as a standalone bullet item.
var bulletPrefixes = []string{"• ", "- "}

// NotesToSlides parses markdown notes into balanced slide records.
//
// "# " and "## " lines open a new slide, bullet lines become their own
// items, and runs of plain lines are joined into one paragraph item that
// ends at a blank line, a bullet or the end of the notes.
func NotesToSlides(notes string) []Slide {
	var (
		slides    []Slide
		current   Slide
		paragraph strings.Builder
	)

	flushParagraph := func() {
		if paragraph.Len() > 0 {
			current.Content = append(current.Content, paragraph.String())
			paragraph.Reset()
		}
	}
	flushSlide := func() {
		if current.Title != "" || len(current.Content) > 0 {
			slides = append(slides, current)
		}
	}

	for _, raw := range strings.Split(notes, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			flushParagraph()
			continue
		}

		if title, ok := headingText(line); ok {
			// A pending paragraph is not flushed here; it carries over
			// into the next slide.
			flushSlide()
			current = Slide{Title: title}
			continue
		}

		if item, ok := bulletText(line); ok {
			flushParagraph()
			current.Content = append(current.Content, item)
			continue
		}

		if paragraph.Len() > 0 {
			paragraph.WriteByte(' ')
		}
		paragraph.WriteString(line)
	}

	flushParagraph()
	flushSlide()

	return Balance(slides)
}

// Balance splits every slide with more than MaxSlideItems items into
// PartSize chunks titled "<title> (Part N)".
func Balance(slides []Slide) []Slide {
	balanced := make([]Slide, 0, len(slides))
	for _, s := range slides {
		if len(s.Content) <= MaxSlideItems {
			balanced = append(balanced, s)
			continue
		}

		parts := (len(s.Content) + PartSize - 1) / PartSize
		for i := 0; i < parts; i++ {
			end := min((i+1)*PartSize, len(s.Content))
			title := s.Title
			if parts > 1 {
				title = fmt.Sprintf("%s (Part %d)", s.Title, i+1)
			}
			balanced = append(balanced, Slide{
				Title:   title,
				Content: s.Content[i*PartSize : end : end],
			})
		}
	}
	return balanced
}

func headingText(line string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return rest, true
	}
	return "", false
}

func bulletText(line string) (string, bool) {
	for _, p := range bulletPrefixes {
		if rest, ok := strings.CutPrefix(line, p); ok {
			return rest, true
		}
	}
	return "", false
}
