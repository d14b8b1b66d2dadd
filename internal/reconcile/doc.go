// Package reconcile implements the precedence-driven merge of file-sourced
// and metadata-sourced SVG data for every (icon, style) pair in a kit.
//
// A well-formed standalone file always wins; the metadata descriptor is the
// fallback; a pair with neither usable source is skipped without error so a
// kit with partial glyph coverage still converts. Every produced record is
// upserted into the staging store, where re-running a pass overwrites prior
// values for the same key.
package reconcile
