package store

import (
	"errors"
	"fmt"
	"strings"
)

// Record is the canonical reconciled unit for one (name, style) pair: inner
// SVG markup plus resolved geometry and the metadata carried along verbatim.
type Record struct {
	Name    string   `json:"name"`
	Style   string   `json:"style"`
	Body    string   `json:"body"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	ViewBox string   `json:"view_box"`
	Unicode string   `json:"unicode"`
	Terms   []string `json:"terms"`
}

// Key returns the record's store identity.
func (r Record) Key() string {
	return r.Name + "/" + r.Style
}

func (r Record) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("record name is required")
	}
	if strings.TrimSpace(r.Style) == "" {
		return errors.New("record style is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return fmt.Errorf("record %s has empty body", r.Key())
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("record %s has non-positive dimensions %dx%d", r.Key(), r.Width, r.Height)
	}
	if strings.TrimSpace(r.ViewBox) == "" {
		return fmt.Errorf("record %s has empty viewBox", r.Key())
	}
	return nil
}

// searchBlob is the lowercase haystack the search query matches against:
// the icon name plus every search term, newline separated.
func (r Record) searchBlob() string {
	parts := make([]string, 0, len(r.Terms)+1)
	parts = append(parts, r.Name)
	parts = append(parts, r.Terms...)
	return strings.ToLower(strings.Join(parts, "\n"))
}
