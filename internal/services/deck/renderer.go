// Package deck renders slide records into a slide-deck file.
//
// Each slide is one 10in × 7.5in page of a PDF built with go-pdf/fpdf: a
// cover page with fixed text, then one page per slide record. Body text is
// styled by segmenter.StyleItem, so what the preview endpoint shows is what
// ends up in the file.
package deck

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

// Cover slide text.
const (
	CoverTitle    = "Generated Presentation"
	CoverSubtitle = "Created with Doc2Deck"
	// DefaultTitle is used for slides whose title is empty.
	DefaultTitle = "Content"
)

// Page geometry in inches (the classic 4:3 slide size).
const (
	pageWidth     = 10.0
	pageHeight    = 7.5
	slideMargin   = 0.5
	titleTop      = 0.4
	bodyTop       = 1.6
	bodyIndent    = 0.5 // text frame margin inside the body placeholder
	bodyTopMargin = 0.3
)

type rgb struct{ r, g, b int }

var (
	darkBlue   = rgb{31, 73, 125}
	mediumBlue = rgb{68, 114, 196}
	darkGray   = rgb{89, 89, 89}
)

// textStyle is the font, color and trailing space for one kind of text.
type textStyle struct {
	size       float64 // points
	bold       bool
	color      rgb
	spaceAfter float64 // points
}

var (
	coverTitleStyle    = textStyle{size: 44, bold: true, color: darkBlue}
	coverSubtitleStyle = textStyle{size: 24, color: mediumBlue}
	slideTitleStyle    = textStyle{size: 32, bold: true, color: darkBlue}
	bulletStyle        = textStyle{size: 20, color: mediumBlue, spaceAfter: 12}
	splitProseStyle    = textStyle{size: 18, color: darkGray, spaceAfter: 8}
	proseStyle         = textStyle{size: 18, color: darkGray, spaceAfter: 10}
)

// Result describes a rendered deck.
type Result struct {
	Path   string            `json:"path"`
	Slides []segmenter.Slide `json:"slides"`
	// Trimmed counts sentences cut from long prose items.
	Trimmed int `json:"trimmed_items"`
}

// Renderer writes decks into OutputDir.
type Renderer struct {
	OutputDir string

	create func(path string) (io.WriteCloser, error)
}

// New creates a renderer that writes into dir.
func New(dir string) *Renderer {
	return &Renderer{
		OutputDir: dir,
		create: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}
}

// Path returns where the deck for name is stored.
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.OutputDir, fmt.Sprintf("presentation_%s.pdf", name))
}

// Create parses notes into slides and writes the deck for name to disk.
func (r *Renderer) Create(notes, name string) (*Result, error) {
	slides := segmenter.NotesToSlides(notes)

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create deck directory: %w", err)
	}

	path := r.Path(name)
	f, err := r.create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck file: %w", err)
	}

	if err := Render(slides, f); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	// Close reports a failed flush; a deck that did not reach disk is removed.
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write deck file: %w", err)
	}

	trimmed := segmenter.DroppedSentences(slides)
	if trimmed > 0 {
		log.Printf("⚠️  Deck %s: %d sentence(s) from long paragraphs were not rendered", name, trimmed)
	}

	return &Result{Path: path, Slides: slides, Trimmed: trimmed}, nil
}

// Render writes the cover slide and one page per slide to w.
func Render(slides []segmenter.Slide, w io.Writer) error {
	doc := build(slides)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to render deck: %w", err)
	}
	return nil
}

// build lays out the whole deck without writing it.
func build(slides []segmenter.Slide) *fpdf.Fpdf {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetMargins(slideMargin, slideMargin, slideMargin)
	// One page per slide: overflowing text is clipped, not paginated.
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(CoverTitle, true)
	doc.SetCreator(CoverSubtitle, true)

	p := &painter{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	p.cover()
	for _, s := range slides {
		p.slide(s)
	}
	return doc
}

// painter draws text onto the current page.
type painter struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func (p *painter) cover() {
	p.doc.AddPage()
	p.doc.SetY(2.6)
	p.write(CoverTitle, coverTitleStyle, "C")
	p.doc.Ln(0.2)
	p.write(CoverSubtitle, coverSubtitleStyle, "C")
}

func (p *painter) slide(s segmenter.Slide) {
	p.doc.AddPage()

	title := s.Title
	if title == "" {
		title = DefaultTitle
	}
	p.doc.SetY(titleTop)
	p.write(title, slideTitleStyle, "L")

	p.doc.SetY(bodyTop + bodyTopMargin)
	for _, item := range segmenter.StyleSlide(s) {
		for _, para := range item.Paragraphs {
			style := proseStyle
			text := para.Text
			switch {
			case para.Kind == segmenter.KindBullet:
				style = bulletStyle
				text = "• " + text
			case para.Split:
				style = splitProseStyle
			}
			p.doc.SetX(slideMargin + bodyIndent)
			p.write(text, style, "L")
		}
	}
}

// write prints text as a wrapped block at the current position.
func (p *painter) write(text string, st textStyle, align string) {
	fontStyle := ""
	if st.bold {
		fontStyle = "B"
	}
	p.doc.SetFont("Helvetica", fontStyle, st.size)
	p.doc.SetTextColor(st.color.r, st.color.g, st.color.b)

	lineHeight := st.size / 72 * 1.2
	p.doc.MultiCell(0, lineHeight, p.tr(text), "", align, false)
	if st.spaceAfter > 0 {
		p.doc.Ln(st.spaceAfter / 72)
	}
}
