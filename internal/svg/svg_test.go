package svg

import (
	"strings"
	"testing"
)

func TestNormalizeDerivesDimensionsFromViewBox(t *testing.T) {
	norm, ok := Normalize(`<svg viewBox="0 0 320 512"><path d="M0 0h320v512H0z"/></svg>`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if norm.Width != 320 || norm.Height != 512 {
		t.Fatalf("unexpected dimensions: %dx%d", norm.Width, norm.Height)
	}
	if norm.ViewBox != "0 0 320 512" {
		t.Fatalf("unexpected viewBox: %q", norm.ViewBox)
	}
	if norm.Body != `<path d="M0 0h320v512H0z"/>` {
		t.Fatalf("unexpected body: %q", norm.Body)
	}
}

func TestNormalizeExplicitAttributesWin(t *testing.T) {
	norm, ok := Normalize(`<svg width="128px" height="256" viewBox="0 0 320 512"><path d="M0 0z"/></svg>`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if norm.Width != 128 || norm.Height != 256 {
		t.Fatalf("unexpected dimensions: %dx%d", norm.Width, norm.Height)
	}
	if norm.ViewBox != "0 0 320 512" {
		t.Fatalf("unexpected viewBox: %q", norm.ViewBox)
	}
}

func TestNormalizeDefaultsDimensionWhenViewBoxUnusable(t *testing.T) {
	norm, ok := Normalize(`<svg viewBox="a b c d"><circle r="4"/></svg>`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if norm.Width != DefaultDimension || norm.Height != DefaultDimension {
		t.Fatalf("expected default dimensions, got %dx%d", norm.Width, norm.Height)
	}
}

func TestNormalizeRequiresViewBox(t *testing.T) {
	if _, ok := Normalize(`<svg width="10" height="10"><path d="M0 0z"/></svg>`); ok {
		t.Fatal("expected failure without viewBox")
	}
}

func TestNormalizeRequiresBody(t *testing.T) {
	if _, ok := Normalize(`<svg viewBox="0 0 10 10">   </svg>`); ok {
		t.Fatal("expected failure for empty body")
	}
	if _, ok := Normalize(`<svg viewBox="0 0 10 10"/>`); ok {
		t.Fatal("expected failure for self-closing svg")
	}
}

func TestNormalizeRejectsNonSVGText(t *testing.T) {
	if _, ok := Normalize("not markup at all"); ok {
		t.Fatal("expected failure for plain text")
	}
	if _, ok := Normalize(`<div viewBox="0 0 1 1">x</div>`); ok {
		t.Fatal("expected failure for non-svg root")
	}
}

func TestNormalizeSkipsCommentsAndDoctype(t *testing.T) {
	text := `<?xml version="1.0"?>
<!DOCTYPE svg>
<!-- generated by <svg> tooling -->
<svg viewBox="0 0 24 24"><!-- inner note --><path d="M0 0z"/></svg>`
	norm, ok := Normalize(text)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if !strings.Contains(norm.Body, `<path d="M0 0z"/>`) {
		t.Fatalf("unexpected body: %q", norm.Body)
	}
	if norm.Width != 24 || norm.Height != 24 {
		t.Fatalf("unexpected dimensions: %dx%d", norm.Width, norm.Height)
	}
}

func TestNormalizeBalancesNestedSVGElements(t *testing.T) {
	text := `<svg viewBox="0 0 100 100"><g><svg viewBox="0 0 10 10"><path d="M1 1z"/></svg></g></svg>`
	norm, ok := Normalize(text)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := `<g><svg viewBox="0 0 10 10"><path d="M1 1z"/></svg></g>`
	if norm.Body != want {
		t.Fatalf("body = %q, want %q", norm.Body, want)
	}
}

func TestNormalizeHandlesSelfClosingNestedSVG(t *testing.T) {
	text := `<svg viewBox="0 0 100 100"><svg x="1"/><path d="M0 0z"/></svg>`
	norm, ok := Normalize(text)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if !strings.HasSuffix(norm.Body, `<path d="M0 0z"/>`) {
		t.Fatalf("unexpected body: %q", norm.Body)
	}
}

func TestNormalizeHandlesCDATA(t *testing.T) {
	text := `<svg viewBox="0 0 8 8"><style><![CDATA[ .a { fill: red; } /* </svg> */ ]]></style><path d="M0 0z"/></svg>`
	norm, ok := Normalize(text)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if !strings.Contains(norm.Body, "CDATA") || !strings.Contains(norm.Body, `<path d="M0 0z"/>`) {
		t.Fatalf("unexpected body: %q", norm.Body)
	}
}

func TestFromDescriptorSynthesizesPathBody(t *testing.T) {
	norm, ok := FromDescriptor(Descriptor{
		Paths:   []string{"M0 0h10v10H0z", "M1 1h2v2H1z"},
		ViewBox: "0 0 10 10",
	})
	if !ok {
		t.Fatal("expected descriptor normalization to succeed")
	}
	want := `<path d="M0 0h10v10H0z" fill="currentColor" />` + "\n" +
		`<path d="M1 1h2v2H1z" fill="currentColor" />`
	if norm.Body != want {
		t.Fatalf("body = %q, want %q", norm.Body, want)
	}
	if norm.Width != 10 || norm.Height != 10 {
		t.Fatalf("unexpected dimensions: %dx%d", norm.Width, norm.Height)
	}
}

func TestFromDescriptorPrefersRawSVG(t *testing.T) {
	norm, ok := FromDescriptor(Descriptor{
		Raw:     `<svg viewBox="0 0 640 512"><path d="M5 5z"/></svg>`,
		Paths:   []string{"M0 0z"},
		ViewBox: "0 0 640 512",
	})
	if !ok {
		t.Fatal("expected descriptor normalization to succeed")
	}
	if norm.Body != `<path d="M5 5z"/>` {
		t.Fatalf("unexpected body: %q", norm.Body)
	}
}

func TestFromDescriptorExplicitDimensionsWin(t *testing.T) {
	norm, ok := FromDescriptor(Descriptor{
		Paths:   []string{"M0 0z"},
		ViewBox: "0 0 320 512",
		Width:   100,
		Height:  200,
	})
	if !ok {
		t.Fatal("expected descriptor normalization to succeed")
	}
	if norm.Width != 100 || norm.Height != 200 {
		t.Fatalf("unexpected dimensions: %dx%d", norm.Width, norm.Height)
	}
	if norm.ViewBox != "0 0 320 512" {
		t.Fatalf("unexpected viewBox: %q", norm.ViewBox)
	}
}

func TestFromDescriptorSynthesizesViewBox(t *testing.T) {
	norm, ok := FromDescriptor(Descriptor{Paths: []string{"M0 0z"}})
	if !ok {
		t.Fatal("expected descriptor normalization to succeed")
	}
	if norm.ViewBox != "0 0 512 512" {
		t.Fatalf("unexpected viewBox: %q", norm.ViewBox)
	}
}

func TestFromDescriptorEmptySourcesFail(t *testing.T) {
	if _, ok := FromDescriptor(Descriptor{ViewBox: "0 0 10 10"}); ok {
		t.Fatal("expected failure with no body sources")
	}
	if _, ok := FromDescriptor(Descriptor{Paths: []string{"", "  "}}); ok {
		t.Fatal("expected failure with only blank paths")
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"128px", 128},
		{"256", 256},
		{" 24pt ", 24},
		{"45.6", 46},
		{"", 0},
		{"auto", 0},
		{"-5", 0},
	}
	for _, tc := range tests {
		if got := parseDimension(tc.in); got != tc.want {
			t.Errorf("parseDimension(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestViewBoxSize(t *testing.T) {
	if w, h := viewBoxSize("0 0 320 512"); w != 320 || h != 512 {
		t.Fatalf("unexpected size: %dx%d", w, h)
	}
	if w, h := viewBoxSize("0,0,16,16"); w != 16 || h != 16 {
		t.Fatalf("unexpected comma-separated size: %dx%d", w, h)
	}
	if w, h := viewBoxSize("0 0 320"); w != 0 || h != 0 {
		t.Fatalf("expected zeros for short viewBox, got %dx%d", w, h)
	}
}
