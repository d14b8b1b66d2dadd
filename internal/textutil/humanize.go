package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// HumanizeStyle turns a style token into a display label: hyphens and
// underscores become spaces and each word is title-cased, so
// "sharp-duotone" renders as "Sharp Duotone".
func HumanizeStyle(style string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range strings.TrimSpace(style) {
		switch {
		case r == '-' || r == '_' || r == ' ':
			if !prevSpace && cleaned.Len() > 0 {
				cleaned.WriteByte(' ')
				prevSpace = true
			}
		default:
			cleaned.WriteRune(r)
			prevSpace = false
		}
	}
	label := strings.TrimSpace(cleaned.String())
	if label == "" {
		return ""
	}
	return titleCaser.String(label)
}

// NormalizeStyleToken lowercases and trims a style name so lookups and store
// keys always use the same form.
func NormalizeStyleToken(style string) string {
	return strings.ToLower(strings.TrimSpace(style))
}
