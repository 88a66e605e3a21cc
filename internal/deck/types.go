package deck

// Deck is the parsed presentation: slide geometry plus every slide's shapes
// in document order. Positions and extents are in EMU (914400 per inch), as
// stored in the file; layout is converted to percentages at render time.
type Deck struct {
	Title  string
	Width  int64 // slide width in EMU
	Height int64 // slide height in EMU
	Slides []Slide
}

// Slide holds the extracted content of one slide.
type Slide struct {
	Number   int  // 1-based document ordinal
	Hidden   bool // excluded from normal playback
	Animated bool // slide carries a timing tree; shapes play entrance effects
	Title    string
	Shapes   []Shape
	Notes    string
}

// ShapeKind discriminates the shape payload.
type ShapeKind int

const (
	KindText ShapeKind = iota
	KindPicture
)

// Shape is one positioned element on a slide.
type Shape struct {
	Kind    ShapeKind
	Left    int64 // EMU
	Top     int64 // EMU
	Width   int64 // EMU
	Height  int64 // EMU
	IsTitle bool

	Paragraphs []Paragraph // KindText
	Image      *Image      // KindPicture
}

// Text returns the shape's full text with paragraphs joined by newlines.
func (s Shape) Text() string {
	out := ""
	for i, p := range s.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}

// Paragraph is one paragraph of a text shape with its formatting.
type Paragraph struct {
	Text      string
	Level     int    // bullet indent level, 0-based
	Alignment string // "l", "ctr", "r", "just"; empty means left
	Bold      bool
	Italic    bool
	Size      float64 // font size in points; 0 means unset
}

// Image is an embedded picture with its sniffed MIME type.
type Image struct {
	Data []byte
	MIME string
}
