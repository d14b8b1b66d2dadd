// Package export groups staged icon records into style-scoped,
// Iconify-compatible icon-set documents and writes them to disk.
package export
