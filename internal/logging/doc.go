// Package logging assembles the structured slog loggers used across iconkit.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes helpers so pipeline code tags log lines with session IDs,
// styles, and icon names consistently. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
