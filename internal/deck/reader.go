// Package deck reads PowerPoint .pptx files (OPC zip containers) into a
// neutral presentation model. Only the parts the HTML renderer needs are
// parsed: slide order and size, hidden flags, text bodies with paragraph
// formatting, embedded pictures, timing-tree presence, and speaker notes.
package deck

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const relNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// Open reads the .pptx file at the given path.
func Open(pptxPath string) (*Deck, error) {
	if !strings.EqualFold(filepath.Ext(pptxPath), ".pptx") {
		return nil, fmt.Errorf("file must be a .pptx file: %s", pptxPath)
	}

	f, err := os.Open(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pptxPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", pptxPath, err)
	}

	title := strings.TrimSuffix(filepath.Base(pptxPath), filepath.Ext(pptxPath))
	return Read(f, info.Size(), title)
}

// Read parses a .pptx container from an io.ReaderAt.
func Read(r io.ReaderAt, size int64, title string) (*Deck, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening presentation as ZIP: %w", err)
	}

	d := &Deck{Title: title}

	slideTargets, err := loadPresentation(zr, d)
	if err != nil {
		return nil, err
	}
	if len(slideTargets) == 0 {
		return nil, fmt.Errorf("presentation has no slides")
	}

	for i, target := range slideTargets {
		slide, err := loadSlide(zr, target, i+1, d.Height)
		if err != nil {
			return nil, fmt.Errorf("reading slide %d: %w", i+1, err)
		}
		d.Slides = append(d.Slides, slide)
	}

	return d, nil
}

// loadPresentation reads slide size and the ordered slide part names from
// ppt/presentation.xml and its relationships file.
func loadPresentation(zr *zip.Reader, d *Deck) ([]string, error) {
	var pres struct {
		SldIDLst struct {
			IDs []struct {
				RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
			} `xml:"sldId"`
		} `xml:"sldIdLst"`
		SldSz struct {
			CX int64 `xml:"cx,attr"`
			CY int64 `xml:"cy,attr"`
		} `xml:"sldSz"`
	}
	if err := decodePart(zr, "ppt/presentation.xml", &pres); err != nil {
		return nil, err
	}
	d.Width = pres.SldSz.CX
	d.Height = pres.SldSz.CY

	rels, err := loadRels(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}

	var targets []string
	for _, id := range pres.SldIDLst.IDs {
		target, ok := rels[id.RID]
		if !ok {
			return nil, fmt.Errorf("slide relationship %s not found", id.RID)
		}
		targets = append(targets, path.Clean(path.Join("ppt", target)))
	}
	return targets, nil
}

// loadRels parses an OPC relationships part into an Id → Target map. A
// missing part yields an empty map, not an error: most slides without
// pictures or notes simply have no rels file of interest.
func loadRels(zr *zip.Reader, name string) (map[string]string, error) {
	f, err := zr.Open(name)
	if err != nil {
		return map[string]string{}, nil
	}
	defer f.Close()

	var doc struct {
		Rels []struct {
			ID     string `xml:"Id,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	rels := make(map[string]string, len(doc.Rels))
	for _, rel := range doc.Rels {
		rels[rel.ID] = rel.Target
	}
	return rels, nil
}

// decodePart opens a named zip entry and XML-decodes it into v.
func decodePart(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return fmt.Errorf("%s not found: %w", name, err)
	}
	defer f.Close()

	if err := xml.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// readPart returns the raw bytes of a named zip entry.
func readPart(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", name, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}
