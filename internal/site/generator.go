// Package site renders a parsed deck into a self-contained HTML5
// presentation: one index.html with absolutely positioned shapes, plus the
// styles.css and script.js assets that drive navigation in the browser.
package site

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/slidecast/slidecast/internal/deck"
)

// animStagger is the entrance-effect delay step, in seconds, between
// consecutive shapes of an animated slide.
const animStagger = 0.15

// defaultDuration is the entrance-effect duration written into the markup.
const defaultDuration = 0.5

// Generator renders one deck into an output directory.
type Generator struct {
	Deck      *deck.Deck
	OutputDir string

	Theme          string // "light" or "dark"
	IncludeNotes   bool
	Animations     bool
	SwipeThreshold float64

	// LiveMode swaps the standalone navigation script for the websocket
	// client used by `slidecast present`.
	LiveMode bool
}

// NewGenerator creates a Generator with standalone-playback defaults.
func NewGenerator(d *deck.Deck, outputDir string) *Generator {
	return &Generator{
		Deck:           d,
		OutputDir:      outputDir,
		Theme:          "light",
		Animations:     true,
		SwipeThreshold: 50,
	}
}

// pageData is the root template payload.
type pageData struct {
	Title          string
	Theme          string
	SwipeThreshold float64
	HasHidden      bool
	Slides         []slideView
}

type slideView struct {
	Number    int
	Hidden    bool
	Shapes    []shapeView
	NotesHTML template.HTML
}

type shapeView struct {
	Style      template.CSS
	IsTitle    bool
	IsPicture  bool
	ImageSrc   template.URL
	Paragraphs []paraView

	Animated     bool
	AnimDelay    string
	AnimDuration string
}

type paraView struct {
	Text  string
	Class string
	Style template.CSS
}

// Generate writes index.html, styles.css and script.js. It returns the path
// of the generated index.html.
func (g *Generator) Generate() (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	data, err := g.buildPage()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("presentation").Parse(presentationTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing presentation template: %w", err)
	}

	indexPath := filepath.Join(g.OutputDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return "", err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return "", fmt.Errorf("rendering index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(g.OutputDir, "styles.css"), []byte(cssContent), 0o644); err != nil {
		return "", err
	}

	js := jsContent
	if g.LiveMode {
		js = liveJSContent
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(js), 0o644); err != nil {
		return "", err
	}

	return indexPath, nil
}

// buildPage maps the deck onto the template view model.
func (g *Generator) buildPage() (*pageData, error) {
	d := g.Deck
	page := &pageData{
		Title:          d.Title,
		Theme:          g.Theme,
		SwipeThreshold: g.SwipeThreshold,
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)

	for _, s := range d.Slides {
		sv := slideView{Number: s.Number, Hidden: s.Hidden}
		if s.Hidden {
			page.HasHidden = true
		}

		for i, shape := range s.Shapes {
			view := shapeView{
				Style:   g.positionStyle(shape),
				IsTitle: shape.IsTitle,
			}
			if g.Animations && s.Animated {
				view.Animated = true
				view.AnimDelay = trimFloat(animStagger * float64(i))
				view.AnimDuration = trimFloat(defaultDuration)
			}
			switch shape.Kind {
			case deck.KindPicture:
				view.IsPicture = true
				view.ImageSrc = template.URL(dataURI(shape.Image))
			case deck.KindText:
				for _, p := range shape.Paragraphs {
					view.Paragraphs = append(view.Paragraphs, paraView{
						Text:  p.Text,
						Class: paraClass(p),
						Style: paraStyle(p),
					})
				}
			}
			sv.Shapes = append(sv.Shapes, view)
		}

		if g.IncludeNotes && s.Notes != "" {
			var buf bytes.Buffer
			if err := md.Convert([]byte(s.Notes), &buf); err != nil {
				return nil, fmt.Errorf("rendering notes for slide %d: %w", s.Number, err)
			}
			sv.NotesHTML = template.HTML(buf.String())
		}

		page.Slides = append(page.Slides, sv)
	}

	return page, nil
}

// positionStyle converts a shape's EMU geometry into percentage CSS so the
// layout scales with the viewport.
func (g *Generator) positionStyle(s deck.Shape) template.CSS {
	pct := func(v, total int64) float64 {
		if total == 0 {
			return 0
		}
		return float64(v) / float64(total) * 100
	}
	return template.CSS(fmt.Sprintf(
		"left:%.4f%%;top:%.4f%%;width:%.4f%%;height:%.4f%%",
		pct(s.Left, g.Deck.Width),
		pct(s.Top, g.Deck.Height),
		pct(s.Width, g.Deck.Width),
		pct(s.Height, g.Deck.Height),
	))
}

// paraClass maps bullet level and alignment onto styling hooks.
func paraClass(p deck.Paragraph) string {
	class := fmt.Sprintf("para lvl-%d", p.Level)
	switch p.Alignment {
	case "ctr":
		class += " align-center"
	case "r":
		class += " align-right"
	case "just":
		class += " align-justify"
	}
	return class
}

// paraStyle emits the inline formatting captured from the first run.
func paraStyle(p deck.Paragraph) template.CSS {
	style := ""
	if p.Size > 0 {
		style += fmt.Sprintf("font-size:%.2fpt;", p.Size)
	}
	if p.Bold {
		style += "font-weight:bold;"
	}
	if p.Italic {
		style += "font-style:italic;"
	}
	return template.CSS(style)
}

// dataURI embeds a picture as a base64 data URI.
func dataURI(img *deck.Image) string {
	if img == nil {
		return ""
	}
	return "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// trimFloat formats seconds without trailing zeros ("0.3", "0.5", "1").
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
