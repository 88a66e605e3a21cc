package deck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// xmlXfrm is the DrawingML transform carrying offset and extent in EMU.
type xmlXfrm struct {
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"off"`
	Ext struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"ext"`
}

type xmlTextBody struct {
	Paragraphs []struct {
		Props *struct {
			Level     int    `xml:"lvl,attr"`
			Alignment string `xml:"algn,attr"`
		} `xml:"pPr"`
		Runs []struct {
			Props *struct {
				Size   int `xml:"sz,attr"` // hundredths of a point
				Bold   int `xml:"b,attr"`
				Italic int `xml:"i,attr"`
			} `xml:"rPr"`
			Text string `xml:"t"`
		} `xml:"r"`
	} `xml:"p"`
}

type xmlSlide struct {
	Show *string `xml:"show,attr"`
	CSld struct {
		SpTree struct {
			Shapes []struct {
				SpPr struct {
					Xfrm xmlXfrm `xml:"xfrm"`
				} `xml:"spPr"`
				TxBody *xmlTextBody `xml:"txBody"`
			} `xml:"sp"`
			Pics []struct {
				BlipFill struct {
					Blip struct {
						Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
					} `xml:"blip"`
				} `xml:"blipFill"`
				SpPr struct {
					Xfrm xmlXfrm `xml:"xfrm"`
				} `xml:"spPr"`
			} `xml:"pic"`
		} `xml:"spTree"`
	} `xml:"cSld"`
	Timing *struct{} `xml:"timing"`
}

// loadSlide parses one slide part plus its relationships (pictures, notes).
func loadSlide(zr *zip.Reader, target string, number int, slideHeight int64) (Slide, error) {
	var doc xmlSlide
	if err := decodePart(zr, target, &doc); err != nil {
		return Slide{}, err
	}

	slide := Slide{
		Number:   number,
		Hidden:   doc.Show != nil && *doc.Show == "0",
		Animated: doc.Timing != nil,
	}

	relsName := path.Join(path.Dir(target), "_rels", path.Base(target)+".rels")
	rels, err := loadRels(zr, relsName)
	if err != nil {
		return Slide{}, err
	}

	for _, sp := range doc.CSld.SpTree.Shapes {
		if sp.TxBody == nil {
			continue
		}
		shape := Shape{
			Kind:   KindText,
			Left:   sp.SpPr.Xfrm.Off.X,
			Top:    sp.SpPr.Xfrm.Off.Y,
			Width:  sp.SpPr.Xfrm.Ext.CX,
			Height: sp.SpPr.Xfrm.Ext.CY,
		}
		for _, p := range sp.TxBody.Paragraphs {
			para := Paragraph{}
			if p.Props != nil {
				para.Level = p.Props.Level
				para.Alignment = p.Props.Alignment
			}
			var text strings.Builder
			for i, r := range p.Runs {
				text.WriteString(r.Text)
				// Shape-level formatting follows the first run, like the
				// paragraph text frame it came from.
				if i == 0 && r.Props != nil {
					para.Bold = r.Props.Bold == 1
					para.Italic = r.Props.Italic == 1
					if r.Props.Size > 0 {
						para.Size = float64(r.Props.Size) / 100
					}
				}
			}
			para.Text = replaceSpecialChars(strings.TrimSpace(text.String()))
			if para.Text != "" {
				shape.Paragraphs = append(shape.Paragraphs, para)
			}
		}
		if len(shape.Paragraphs) == 0 {
			continue
		}
		// Title heuristic: the first text shape sitting in the top quarter.
		if slide.Title == "" && slideHeight > 0 && shape.Top < slideHeight/4 {
			slide.Title = shape.Text()
			shape.IsTitle = true
		}
		slide.Shapes = append(slide.Shapes, shape)
	}

	for _, pic := range doc.CSld.SpTree.Pics {
		target, ok := rels[pic.BlipFill.Blip.Embed]
		if !ok {
			continue
		}
		mediaName := path.Clean(path.Join(path.Dir(relsName), "..", target))
		data, err := readPart(zr, mediaName)
		if err != nil {
			return Slide{}, fmt.Errorf("reading picture %s: %w", mediaName, err)
		}
		slide.Shapes = append(slide.Shapes, Shape{
			Kind:   KindPicture,
			Left:   pic.SpPr.Xfrm.Off.X,
			Top:    pic.SpPr.Xfrm.Off.Y,
			Width:  pic.SpPr.Xfrm.Ext.CX,
			Height: pic.SpPr.Xfrm.Ext.CY,
			Image:  &Image{Data: data, MIME: sniffImageMIME(data)},
		})
	}

	if notesTarget, ok := findNotesTarget(rels); ok {
		notesName := path.Clean(path.Join(path.Dir(relsName), "..", notesTarget))
		notes, err := loadNotes(zr, notesName)
		if err != nil {
			return Slide{}, err
		}
		slide.Notes = notes
	}

	return slide, nil
}

// findNotesTarget locates the notes-slide relationship, if any.
func findNotesTarget(rels map[string]string) (string, bool) {
	for _, target := range rels {
		if strings.Contains(target, "notesSlide") {
			return target, true
		}
	}
	return "", false
}

// loadNotes extracts the plain text of a notes slide: all runs of all
// paragraphs joined, skipping placeholder noise like bare slide numbers.
func loadNotes(zr *zip.Reader, name string) (string, error) {
	var doc struct {
		CSld struct {
			SpTree struct {
				Shapes []struct {
					TxBody *xmlTextBody `xml:"txBody"`
				} `xml:"sp"`
			} `xml:"spTree"`
		} `xml:"cSld"`
	}
	if err := decodePart(zr, name, &doc); err != nil {
		return "", err
	}

	var lines []string
	for _, sp := range doc.CSld.SpTree.Shapes {
		if sp.TxBody == nil {
			continue
		}
		for _, p := range sp.TxBody.Paragraphs {
			var text strings.Builder
			for _, r := range p.Runs {
				text.WriteString(r.Text)
			}
			line := replaceSpecialChars(strings.TrimSpace(text.String()))
			if line == "" || isBareNumber(line) {
				continue
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func isBareNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// specialChars maps PowerPoint's private-use-area glyphs to standard Unicode.
var specialChars = strings.NewReplacer(
	"", "→",
	"", "←",
	"", "↑",
	"", "↓",
	"", "•",
	"", "•",
	"", "✓",
	"", "✗",
)

func replaceSpecialChars(s string) string {
	return specialChars.Replace(s)
}

// sniffImageMIME detects the picture format from its magic bytes,
// defaulting to PNG.
func sniffImageMIME(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "image/png"
	case bytes.HasPrefix(data, []byte("\xff\xd8")):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "image/gif"
	default:
		return "image/png"
	}
}
