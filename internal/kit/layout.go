package kit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Fixed names inside a FontAwesome kit root.
const (
	MetadataDirName  = "metadata"
	SVGDirName       = "svgs"
	FontDirName      = "fonts"
	MetadataFileName = "icons.json"
)

// Layout describes the fixed directory structure of a kit: a metadata
// directory holding icons.json, an svgs directory with one subdirectory per
// style, and a fonts directory whose content the pipeline ignores.
type Layout struct {
	Root string
}

// NewLayout wraps a kit root directory.
func NewLayout(root string) *Layout {
	return &Layout{Root: filepath.Clean(root)}
}

// MetadataDir returns the kit's metadata directory.
func (l *Layout) MetadataDir() string {
	return filepath.Join(l.Root, MetadataDirName)
}

// SVGDir returns the kit's per-style SVG directory.
func (l *Layout) SVGDir() string {
	return filepath.Join(l.Root, SVGDirName)
}

// FontDir returns the kit's font directory.
func (l *Layout) FontDir() string {
	return filepath.Join(l.Root, FontDirName)
}

// MetadataFile returns the path of the icon metadata document.
func (l *Layout) MetadataFile() string {
	return filepath.Join(l.MetadataDir(), MetadataFileName)
}

// SVGPath returns the path of one icon's SVG file for a style.
func (l *Layout) SVGPath(style, name string) string {
	return filepath.Join(l.SVGDir(), style, name+".svg")
}

// Styles lists the style subdirectories present under the SVG directory,
// sorted alphabetically.
func (l *Layout) Styles() ([]string, error) {
	entries, err := os.ReadDir(l.SVGDir())
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}
	styles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		styles = append(styles, entry.Name())
	}
	sort.Strings(styles)
	return styles, nil
}

// ValidationError aggregates every missing or invalid required kit path.
// It is reported before any icon work begins and aborts the conversion.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "kit layout invalid: " + strings.Join(e.Problems, "; ")
}

// Validate checks the kit's structural requirements and returns a
// ValidationError listing every problem at once, or nil when the layout is
// usable. Per-icon content issues are out of scope; only the directory
// skeleton and the metadata document's presence are checked here.
func (l *Layout) Validate() error {
	var problems []string

	requireDir := func(path string) {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("missing directory %s", path))
		case !info.IsDir():
			problems = append(problems, fmt.Sprintf("%s is not a directory", path))
		}
	}

	requireDir(l.Root)
	requireDir(l.MetadataDir())
	requireDir(l.SVGDir())
	requireDir(l.FontDir())

	if info, err := os.Stat(l.MetadataFile()); err != nil {
		problems = append(problems, fmt.Sprintf("missing metadata document %s", l.MetadataFile()))
	} else if info.IsDir() {
		problems = append(problems, fmt.Sprintf("%s is not a file", l.MetadataFile()))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
