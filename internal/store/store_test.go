package store_test

import (
	"context"
	"testing"

	"iconkit/internal/store"
	"iconkit/internal/testsupport"
)

func TestUpsertAndListByStyle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.MustUpsert(t, st, testsupport.NewRecord("bolt", "solid"))
	testsupport.MustUpsert(t, st, testsupport.NewRecord("anchor", "solid"))
	testsupport.MustUpsert(t, st, testsupport.NewRecord("anchor", "regular"))

	records, err := st.ListByStyle(ctx, "solid")
	if err != nil {
		t.Fatalf("ListByStyle failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 solid records, got %d", len(records))
	}
	if records[0].Name != "anchor" || records[1].Name != "bolt" {
		t.Fatalf("expected name order, got %v then %v", records[0].Name, records[1].Name)
	}

	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 records, got %d", count)
	}
}

func TestUpsertLastWriteWins(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := testsupport.NewRecord("anchor", "solid")
	first.Body = `<path d="M1 1z"/>`
	testsupport.MustUpsert(t, st, first)

	second := testsupport.NewRecord("anchor", "solid")
	second.Body = `<path d="M2 2z"/>`
	second.Width = 320
	second.Terms = []string{"ship"}
	testsupport.MustUpsert(t, st, second)

	records, err := st.ListByStyle(ctx, "solid")
	if err != nil {
		t.Fatalf("ListByStyle failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(records))
	}
	got := records[0]
	if got.Body != `<path d="M2 2z"/>` || got.Width != 320 {
		t.Fatalf("expected latest write, got %+v", got)
	}
	if len(got.Terms) != 1 || got.Terms[0] != "ship" {
		t.Fatalf("expected latest terms, got %v", got.Terms)
	}
}

func TestUpsertRejectsInvalidRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	invalid := testsupport.NewRecord("anchor", "solid")
	invalid.Body = "  "
	if err := st.Upsert(ctx, invalid); err == nil {
		t.Fatal("expected error for empty body")
	}

	invalid = testsupport.NewRecord("anchor", "solid")
	invalid.Width = 0
	if err := st.Upsert(ctx, invalid); err == nil {
		t.Fatal("expected error for non-positive width")
	}

	invalid = testsupport.NewRecord("", "solid")
	if err := st.Upsert(ctx, invalid); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestListStylesSortedDistinct(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, pair := range [][2]string{
		{"anchor", "solid"},
		{"anchor", "brands"},
		{"bolt", "solid"},
		{"bolt", "regular"},
	} {
		testsupport.MustUpsert(t, st, testsupport.NewRecord(pair[0], pair[1]))
	}

	styles, err := st.ListStyles(ctx)
	if err != nil {
		t.Fatalf("ListStyles failed: %v", err)
	}
	want := []string{"brands", "regular", "solid"}
	if len(styles) != len(want) {
		t.Fatalf("unexpected styles: %v", styles)
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Fatalf("unexpected styles: %v", styles)
		}
	}
}

func TestSearchMatchesNameAndTerms(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	anchor := testsupport.NewRecord("anchor", "solid")
	anchor.Terms = []string{"ship", "Marina"}
	testsupport.MustUpsert(t, st, anchor)

	boat := testsupport.NewRecord("sailboat", "solid")
	boat.Terms = []string{"ship"}
	testsupport.MustUpsert(t, st, boat)

	bolt := testsupport.NewRecord("bolt", "brands")
	bolt.Terms = []string{"lightning"}
	testsupport.MustUpsert(t, st, bolt)

	// Name substring, case-insensitive.
	records, err := st.Search(ctx, "ANCH")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 1 || records[0].Name != "anchor" {
		t.Fatalf("unexpected results: %v", records)
	}

	// Term substring hits both boats.
	records, err = st.Search(ctx, "ship")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 2 || records[0].Name != "anchor" || records[1].Name != "sailboat" {
		t.Fatalf("unexpected results: %v", records)
	}

	// Case-insensitive against term casing.
	records, err = st.Search(ctx, "marina")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("unexpected results: %v", records)
	}

	// Style restriction.
	records, err = st.Search(ctx, "l", "brands")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 1 || records[0].Name != "bolt" {
		t.Fatalf("unexpected restricted results: %v", records)
	}

	// Blank needle matches nothing.
	records, err = st.Search(ctx, "   ")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no results for blank needle, got %v", records)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.MustUpsert(t, st, testsupport.NewRecord("anchor", "solid"))
	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store, got %d", count)
	}
}

func TestOpenPathReusesExistingDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.MustUpsert(t, st, testsupport.NewRecord("anchor", "solid"))
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := store.OpenPath(cfg.StoreDBPath())
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected persisted record, got %d", count)
	}
}
