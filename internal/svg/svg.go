package svg

import (
	"fmt"
	"strings"
)

// DefaultDimension is FontAwesome's native grid size, used when neither an
// explicit attribute nor a viewBox supplies a dimension.
const DefaultDimension = 512

// Normalized is the canonical result of parsing one SVG source: the inner
// markup without the outer svg tag plus resolved geometry.
type Normalized struct {
	Body    string
	Width   int
	Height  int
	ViewBox string
}

// Descriptor is the embedded per-style SVG data carried by kit metadata.
// Any field may be absent.
type Descriptor struct {
	Raw     string
	Paths   []string
	ViewBox string
	Width   int
	Height  int
}

// Normalize parses an SVG document's text. It requires a viewBox attribute
// and non-empty inner markup; anything else is a parse failure reported as
// ok=false, never an error.
//
// Width and height resolve in order: explicit numeric attributes (trailing
// unit suffixes tolerated), the 3rd/4th viewBox components, then
// DefaultDimension. The viewBox string passes through verbatim, trimmed.
func Normalize(text string) (*Normalized, bool) {
	doc, ok := parseDocument(text)
	if !ok {
		return nil, false
	}

	viewBox := strings.TrimSpace(doc.attr("viewBox"))
	if viewBox == "" {
		return nil, false
	}

	body := strings.TrimSpace(doc.inner)
	if body == "" {
		return nil, false
	}

	vbWidth, vbHeight := viewBoxSize(viewBox)
	width := parseDimension(doc.attr("width"))
	if width <= 0 {
		width = vbWidth
	}
	if width <= 0 {
		width = DefaultDimension
	}
	height := parseDimension(doc.attr("height"))
	if height <= 0 {
		height = vbHeight
	}
	if height <= 0 {
		height = DefaultDimension
	}

	return &Normalized{Body: body, Width: width, Height: height, ViewBox: viewBox}, true
}

// FromDescriptor normalizes metadata-embedded SVG data. The body comes from
// the raw SVG text when present (same inner-markup extraction as Normalize,
// minus the viewBox requirement), otherwise it is synthesized by wrapping
// each non-empty path string in a path element. Geometry resolves from the
// descriptor's explicit fields, then its viewBox, then DefaultDimension; a
// missing viewBox is synthesized from the resolved dimensions.
func FromDescriptor(d Descriptor) (*Normalized, bool) {
	var body string
	if strings.TrimSpace(d.Raw) != "" {
		if doc, ok := parseDocument(d.Raw); ok {
			body = strings.TrimSpace(doc.inner)
		}
	}
	if body == "" {
		body = synthesizeBody(d.Paths)
	}
	if body == "" {
		return nil, false
	}

	viewBox := strings.TrimSpace(d.ViewBox)
	vbWidth, vbHeight := viewBoxSize(viewBox)

	width := d.Width
	if width <= 0 {
		width = vbWidth
	}
	if width <= 0 {
		width = DefaultDimension
	}
	height := d.Height
	if height <= 0 {
		height = vbHeight
	}
	if height <= 0 {
		height = DefaultDimension
	}

	if vbWidth <= 0 || vbHeight <= 0 {
		viewBox = fmt.Sprintf("0 0 %d %d", width, height)
	}

	return &Normalized{Body: body, Width: width, Height: height, ViewBox: viewBox}, true
}

// synthesizeBody wraps each non-empty path-data string in a path element.
func synthesizeBody(paths []string) string {
	elements := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		elements = append(elements, `<path d="`+p+`" fill="currentColor" />`)
	}
	return strings.Join(elements, "\n")
}
