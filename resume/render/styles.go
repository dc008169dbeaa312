package render

import "fmt"

// Style names understood by the section renderers. Renderers reference
// styles by name only; attribute values live in the Registry so visual
// consistency is a registry property rather than a per-call accident.
const (
	StyleHeading    = "heading"
	StyleSubheading = "subheading"
	StyleBody       = "body"
	StyleBullet     = "bullet"
)

// Layout constants shared by every section.
const (
	fontName = "Calibri"

	// Horizontal offset of the single right-aligned tab stop used for date
	// columns. Fixed for every entry so the columns line up regardless of
	// left-text length.
	dateTabStopInches = 6.0

	marginTopInches    = 0.75
	marginBottomInches = 0.75
	marginLeftInches   = 1.0
	marginRightInches  = 1.0
)

// Style holds the typography and spacing attributes of one named style.
type Style struct {
	Font                string
	SizePt              float64
	Bold                bool
	SpaceBeforePt       float64
	SpaceAfterPt        float64
	LineSpacing         float64
	LeftIndentInches    float64
	HangingIndentInches float64
}

// Registry is the fixed, load-once catalogue of named styles. It is
// immutable after construction.
type Registry struct {
	styles map[string]Style
}

// NewRegistry builds the four-style catalogue used by every render pass.
func NewRegistry() *Registry {
	return &Registry{styles: map[string]Style{
		StyleHeading: {
			Font:        fontName,
			SizePt:      12,
			Bold:        true,
			LineSpacing: 1,
		},
		StyleSubheading: {
			Font:        fontName,
			SizePt:      10,
			Bold:        true,
			LineSpacing: 1,
		},
		StyleBody: {
			Font:        fontName,
			SizePt:      10,
			LineSpacing: 1,
		},
		StyleBullet: {
			Font:                fontName,
			SizePt:              9.5,
			LineSpacing:         1,
			LeftIndentInches:    0.3,
			HangingIndentInches: 0.15,
		},
	}}
}

// Get returns the style definition for a name.
func (r *Registry) Get(name string) (Style, error) {
	style, ok := r.styles[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q", name)
	}
	return style, nil
}

// Names returns the defined style names in serialization order.
func (r *Registry) Names() []string {
	return []string{StyleHeading, StyleSubheading, StyleBody, StyleBullet}
}
