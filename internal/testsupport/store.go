package testsupport

import (
	"context"
	"testing"

	"iconkit/internal/config"
	"iconkit/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// MustUpsert stages a record and fails the test on error.
func MustUpsert(t testing.TB, st *store.Store, record store.Record) {
	t.Helper()

	if err := st.Upsert(context.Background(), record); err != nil {
		t.Fatalf("store.Upsert: %v", err)
	}
}

// NewRecord builds a minimal valid record for tests.
func NewRecord(name, style string) store.Record {
	return store.Record{
		Name:    name,
		Style:   style,
		Body:    `<path d="M0 0z"/>`,
		Width:   512,
		Height:  512,
		ViewBox: "0 0 512 512",
		Unicode: "f000",
		Terms:   []string{},
	}
}
