// Package store persists reconciled icon records in a SQLite staging table
// keyed by (name, style).
//
// The table is disposable: every conversion pass clears and repopulates it,
// and later writes to the same key replace the prior value wholesale. Between
// passes the store answers the CLI's style listing, per-style listing, and
// case-insensitive substring search.
package store
