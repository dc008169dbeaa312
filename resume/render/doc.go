// Package render turns a validated resume record into a styled, paginated
// DOCX document. Section renderers append typed paragraph blocks to a
// Document tree; the serializer alone knows how to lower that tree into the
// OOXML package format.
package render

// Alignment of a paragraph within the page column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignJustify
)

// Run is one span of text inside a paragraph. A Tab run renders as a tab
// character jumping to the paragraph's right tab stop.
type Run struct {
	Text string
	Bold bool
	Tab  bool
}

// Paragraph is one block of the document tree.
type Paragraph struct {
	// Style names one of the Registry's four styles.
	Style string
	Align Alignment
	Runs  []Run

	// BottomBorder draws a full-width rule line under the paragraph as a
	// paragraph border attribute, so it survives fixed-layout conversion.
	BottomBorder bool

	// DateTab adds the registry-level right tab stop used for date columns.
	DateTab bool

	// Bullet marks the paragraph as an item of the hanging bullet list.
	Bullet bool

	// Compact shrinks the paragraph to half line spacing with a 2pt space
	// after; used for the tighter spacers between dense sections.
	Compact bool
}

// Document is the in-memory tree handed from the assembler to the
// serializer. One render pass owns one Document exclusively; it is
// append-only during assembly and never mutated after serializer handoff.
type Document struct {
	paragraphs []Paragraph
}

// NewDocument returns an empty tree.
func NewDocument() *Document {
	return &Document{}
}

// Append adds one paragraph block to the tree.
func (d *Document) Append(p Paragraph) {
	d.paragraphs = append(d.paragraphs, p)
}

// Blocks returns a copy of the paragraph sequence for inspection.
func (d *Document) Blocks() []Paragraph {
	out := make([]Paragraph, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// Text returns the concatenated text of a paragraph, with tabs rendered
// literally. Useful for tests and content checks.
func (p Paragraph) Text() string {
	var out string
	for _, r := range p.Runs {
		if r.Tab {
			out += "\t"
			continue
		}
		out += r.Text
	}
	return out
}
