package svg

import (
	"strconv"
	"strings"
)

// document holds the outermost svg element's attributes and raw inner markup.
type document struct {
	attrs map[string]string
	inner string
}

func (d *document) attr(name string) string {
	if v, ok := d.attrs[name]; ok {
		return v
	}
	lower := strings.ToLower(name)
	for k, v := range d.attrs {
		if strings.ToLower(k) == lower {
			return v
		}
	}
	return ""
}

// parseDocument locates the outermost <svg> element and extracts its
// attributes and inner markup. It skips comments, CDATA sections, doctype
// declarations, and processing instructions, and balances nested <svg>
// elements so the inner markup always ends at the matching close tag.
func parseDocument(text string) (*document, bool) {
	openStart, ok := findSVGStart(text, 0)
	if !ok {
		return nil, false
	}

	attrs, openEnd, selfClosing, ok := parseStartTag(text, openStart)
	if !ok {
		return nil, false
	}
	if selfClosing {
		return &document{attrs: attrs, inner: ""}, true
	}

	closeStart, ok := findMatchingClose(text, openEnd)
	if !ok {
		return nil, false
	}

	return &document{attrs: attrs, inner: text[openEnd:closeStart]}, true
}

// findSVGStart returns the index of the first "<svg" start tag at or after
// from, skipping non-element constructs.
func findSVGStart(text string, from int) (int, bool) {
	i := from
	for i < len(text) {
		lt := strings.IndexByte(text[i:], '<')
		if lt < 0 {
			return 0, false
		}
		i += lt
		if skipped, ok := skipNonElement(text, i); ok {
			i = skipped
			continue
		}
		if isTagAt(text, i, "svg") {
			return i, true
		}
		i++
	}
	return 0, false
}

// findMatchingClose scans forward from the first byte of content and returns
// the index of the "</svg>" that closes the already-opened outer element.
func findMatchingClose(text string, from int) (int, bool) {
	depth := 1
	i := from
	for i < len(text) {
		lt := strings.IndexByte(text[i:], '<')
		if lt < 0 {
			return 0, false
		}
		i += lt
		if skipped, ok := skipNonElement(text, i); ok {
			i = skipped
			continue
		}
		if isClosingTagAt(text, i, "svg") {
			depth--
			if depth == 0 {
				return i, true
			}
			i++
			continue
		}
		if isTagAt(text, i, "svg") {
			_, end, selfClosing, ok := parseStartTag(text, i)
			if !ok {
				return 0, false
			}
			if !selfClosing {
				depth++
			}
			i = end
			continue
		}
		i++
	}
	return 0, false
}

// skipNonElement advances past comments, CDATA sections, doctype
// declarations, and processing instructions starting at index i. The second
// return is false when i does not start such a construct.
func skipNonElement(text string, i int) (int, bool) {
	switch {
	case strings.HasPrefix(text[i:], "<!--"):
		end := strings.Index(text[i+4:], "-->")
		if end < 0 {
			return len(text), true
		}
		return i + 4 + end + 3, true
	case strings.HasPrefix(text[i:], "<![CDATA["):
		end := strings.Index(text[i+9:], "]]>")
		if end < 0 {
			return len(text), true
		}
		return i + 9 + end + 3, true
	case strings.HasPrefix(text[i:], "<!"):
		end := strings.IndexByte(text[i:], '>')
		if end < 0 {
			return len(text), true
		}
		return i + end + 1, true
	case strings.HasPrefix(text[i:], "<?"):
		end := strings.Index(text[i+2:], "?>")
		if end < 0 {
			return len(text), true
		}
		return i + 2 + end + 2, true
	}
	return i, false
}

// isTagAt reports whether a start tag for name begins at index i.
func isTagAt(text string, i int, name string) bool {
	if i+1+len(name) > len(text) {
		return false
	}
	if text[i] != '<' || !strings.EqualFold(text[i+1:i+1+len(name)], name) {
		return false
	}
	return isNameBoundary(text, i+1+len(name))
}

// isClosingTagAt reports whether a close tag for name begins at index i.
func isClosingTagAt(text string, i int, name string) bool {
	if i+2+len(name) > len(text) {
		return false
	}
	if text[i] != '<' || text[i+1] != '/' || !strings.EqualFold(text[i+2:i+2+len(name)], name) {
		return false
	}
	return isNameBoundary(text, i+2+len(name))
}

func isNameBoundary(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	switch text[i] {
	case ' ', '\t', '\n', '\r', '>', '/':
		return true
	}
	return false
}

// parseStartTag parses the attributes of the start tag beginning at index
// start and returns the attribute map, the index just past the closing '>',
// and whether the tag is self-closing.
func parseStartTag(text string, start int) (map[string]string, int, bool, bool) {
	attrs := make(map[string]string)
	i := start + 1
	// Skip the tag name.
	for i < len(text) && !isSpaceByte(text[i]) && text[i] != '>' && text[i] != '/' {
		i++
	}

	selfClosing := false
	for i < len(text) {
		for i < len(text) && isSpaceByte(text[i]) {
			i++
		}
		if i >= len(text) {
			return nil, 0, false, false
		}
		if text[i] == '>' {
			return attrs, i + 1, selfClosing, true
		}
		if text[i] == '/' {
			selfClosing = true
			i++
			continue
		}

		nameStart := i
		for i < len(text) && text[i] != '=' && text[i] != '>' && text[i] != '/' && !isSpaceByte(text[i]) {
			i++
		}
		name := text[nameStart:i]
		for i < len(text) && isSpaceByte(text[i]) {
			i++
		}
		if i >= len(text) || text[i] != '=' {
			// Bare attribute without a value.
			if name != "" {
				attrs[name] = ""
			}
			continue
		}
		i++
		for i < len(text) && isSpaceByte(text[i]) {
			i++
		}
		if i >= len(text) {
			return nil, 0, false, false
		}
		if quote := text[i]; quote == '"' || quote == '\'' {
			i++
			valueStart := i
			end := strings.IndexByte(text[i:], quote)
			if end < 0 {
				return nil, 0, false, false
			}
			attrs[name] = text[valueStart : i+end]
			i += end + 1
			continue
		}
		valueStart := i
		for i < len(text) && !isSpaceByte(text[i]) && text[i] != '>' && text[i] != '/' {
			i++
		}
		attrs[name] = text[valueStart:i]
	}
	return nil, 0, false, false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// parseDimension extracts a positive integer from a dimension attribute,
// tolerating trailing unit suffixes such as "px". Returns 0 when the value
// is absent or non-numeric.
func parseDimension(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	end := 0
	for end < len(value) {
		b := value[end]
		if (b >= '0' && b <= '9') || b == '.' || b == '-' || b == '+' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(value[:end], 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(f + 0.5)
}

// viewBoxSize returns the 3rd and 4th viewBox components rounded to
// integers, or zeros when the string does not hold four numbers.
func viewBoxSize(viewBox string) (int, int) {
	fields := strings.FieldsFunc(viewBox, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	if len(fields) != 4 {
		return 0, 0
	}
	width, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || width <= 0 {
		return 0, 0
	}
	height, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || height <= 0 {
		return 0, 0
	}
	return int(width + 0.5), int(height + 0.5)
}
