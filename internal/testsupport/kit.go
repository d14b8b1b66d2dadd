package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"iconkit/internal/kit"
)

// WriteKitSkeleton creates the fixed kit directory structure (metadata/,
// svgs/, fonts/) with an empty metadata document and returns the root.
func WriteKitSkeleton(t testing.TB, root string) {
	t.Helper()

	for _, dir := range []string{kit.MetadataDirName, kit.SVGDirName, kit.FontDirName} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	WriteMetadata(t, root, map[string]any{})
}

// WriteMetadata marshals entries into the kit's icons.json document.
func WriteMetadata(t testing.TB, root string, entries map[string]any) {
	t.Helper()

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal metadata: %v", err)
	}
	path := filepath.Join(root, kit.MetadataDirName, kit.MetadataFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir metadata: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
}

// WriteSVG writes one style's SVG file into the kit.
func WriteSVG(t testing.TB, root, style, name, content string) {
	t.Helper()

	dir := filepath.Join(root, kit.SVGDirName, style)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir style %s: %v", style, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".svg"), []byte(content), 0o644); err != nil {
		t.Fatalf("write svg %s/%s: %v", style, name, err)
	}
}

// WriteStyleDir creates an empty style directory inside the kit.
func WriteStyleDir(t testing.TB, root, style string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(root, kit.SVGDirName, style), 0o755); err != nil {
		t.Fatalf("mkdir style %s: %v", style, err)
	}
}
