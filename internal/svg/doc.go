// Package svg normalizes FontAwesome SVG sources into canonical inner markup
// plus resolved geometry.
//
// Two inputs exist per icon: the standalone .svg file and the descriptor
// embedded in kit metadata. Both funnel through the same narrowly-scoped
// element scanner, which balances nested svg elements and skips comments,
// CDATA, doctypes, and processing instructions. Parse failures are reported
// as a false ok value, never as errors; callers treat them as "this source
// has no usable geometry" and fall back to the other source.
package svg
