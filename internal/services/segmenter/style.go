package segmenter

import (
	"strings"
	"unicode/utf8"
)

const (
	// bulletMaxLen is the length below which a sentence-free item is a bullet.
	bulletMaxLen = 100
	// proseSplitLen is the length above which prose is split into sentences.
	proseSplitLen = 200
	// maxProseSentences is how many sentences of a split item are kept.
	maxProseSentences = 3
)

// Kind is the visual style of a rendered paragraph.
type Kind string

const (
	KindBullet Kind = "bullet"
	KindProse  Kind = "prose"
)

// Paragraph is one styled line of slide body text.
type Paragraph struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
	// Split is set on prose paragraphs cut from a longer item.
	Split bool `json:"split,omitempty"`
}

// Styled is the rendered body of one content item.
type Styled struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	// Dropped counts sentences past the third that were not rendered.
	Dropped int `json:"dropped,omitempty"`
}

// StyleItem decides how a single content item is shown on a slide.
//
// Items shorter than 100 characters without a ". " are bullets. Longer items
// are prose; prose over 200 characters is split on ". " and only the first
// three sentences are kept. Dropped reports what was cut so callers can warn
// about it.
func StyleItem(item string) Styled {
	n := utf8.RuneCountInString(item)

	if n < bulletMaxLen && !strings.Contains(item, ". ") {
		return Styled{Paragraphs: []Paragraph{{Text: item, Kind: KindBullet}}}
	}

	if n <= proseSplitLen {
		return Styled{Paragraphs: []Paragraph{{Text: item, Kind: KindProse}}}
	}

	sentences := strings.Split(item, ". ")
	kept := sentences
	if len(kept) > maxProseSentences {
		kept = kept[:maxProseSentences]
	}

	out := Styled{
		Paragraphs: make([]Paragraph, 0, len(kept)),
		Dropped:    len(sentences) - len(kept),
	}
	for _, s := range kept {
		if !strings.HasSuffix(s, ".") {
			s += "."
		}
		out.Paragraphs = append(out.Paragraphs, Paragraph{Text: s, Kind: KindProse, Split: true})
	}
	return out
}

// StyleSlide styles every content item of a slide in order.
func StyleSlide(s Slide) []Styled {
	styled := make([]Styled, len(s.Content))
	for i, item := range s.Content {
		styled[i] = StyleItem(item)
	}
	return styled
}

// DroppedSentences totals the sentences StyleItem would discard across slides.
func DroppedSentences(slides []Slide) int {
	total := 0
	for _, s := range slides {
		for _, item := range s.Content {
			total += StyleItem(item).Dropped
		}
	}
	return total
}
