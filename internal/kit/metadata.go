package kit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"iconkit/internal/svg"
)

// Metadata is the kit's icon metadata document keyed by icon name. It is
// built and returned in one pass; callers own the map outright and no state
// is accumulated anywhere else.
type Metadata map[string]Icon

// Icon is one metadata entry: identity plus a per-style embedded SVG
// descriptor used when no standalone file exists for a style.
type Icon struct {
	Unicode string                 `json:"unicode"`
	Label   string                 `json:"label"`
	Aliases Aliases                `json:"aliases"`
	Search  Search                 `json:"search"`
	Styles  []string               `json:"styles"`
	SVG     map[string]EmbeddedSVG `json:"svg"`
}

// Aliases carries alternate names for an icon.
type Aliases struct {
	Names []string `json:"names"`
}

// Search carries the icon's search terms. FontAwesome mixes strings and bare
// numbers in this list, so it decodes through StringList.
type Search struct {
	Terms StringList `json:"terms"`
}

// EmbeddedSVG is the optional per-style SVG data inside a metadata entry.
type EmbeddedSVG struct {
	Raw     string     `json:"raw"`
	Path    StringList `json:"path"`
	ViewBox ViewBox    `json:"viewBox"`
	Width   Dimension  `json:"width"`
	Height  Dimension  `json:"height"`
}

// Descriptor converts the embedded data into the normalizer's input form.
func (e EmbeddedSVG) Descriptor() svg.Descriptor {
	return svg.Descriptor{
		Raw:     e.Raw,
		Paths:   []string(e.Path),
		ViewBox: string(e.ViewBox),
		Width:   int(e.Width),
		Height:  int(e.Height),
	}
}

// LoadMetadata reads and decodes the kit's icon metadata document.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return meta, nil
}

// Names returns the metadata's icon names sorted alphabetically.
func (m Metadata) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StringList decodes a JSON string, number, or heterogeneous array of the
// two into a string slice.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}
	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			value, err := scalarString(item)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		*s = values
		return nil
	}
	value, err := scalarString(data)
	if err != nil {
		return err
	}
	*s = []string{value}
	return nil
}

// ViewBox decodes either a space-separated string or an array of numbers
// into the canonical "minX minY width height" string form.
type ViewBox string

func (v *ViewBox) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}
	if data[0] == '[' {
		var nums []json.Number
		if err := json.Unmarshal(data, &nums); err != nil {
			return err
		}
		parts := make([]string, 0, len(nums))
		for _, n := range nums {
			parts = append(parts, n.String())
		}
		*v = ViewBox(strings.Join(parts, " "))
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*v = ViewBox(strings.TrimSpace(str))
	return nil
}

// Dimension decodes a JSON number or numeric string into an integer pixel
// count, rounding fractional values.
type Dimension int

func (d *Dimension) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = 0
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		f, err := num.Float64()
		if err != nil {
			return err
		}
		*d = Dimension(f + 0.5)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	str = strings.TrimSpace(str)
	end := 0
	for end < len(str) {
		b := str[end]
		if (b >= '0' && b <= '9') || b == '.' || b == '-' || b == '+' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		*d = 0
		return nil
	}
	// Trailing unit suffixes ("448px") are tolerated, mirroring the
	// normalizer's attribute handling.
	f, err := strconv.ParseFloat(str[:end], 64)
	if err != nil {
		*d = 0
		return nil
	}
	*d = Dimension(f + 0.5)
	return nil
}

func scalarString(data []byte) (string, error) {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return str, nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		return num.String(), nil
	}
	return "", fmt.Errorf("value %s is neither string nor number", string(data))
}
