// Package workflow drives end-to-end conversion sessions: kit validation,
// metadata loading, reconciliation into the staging store, and locked export
// of the per-style icon-set documents. Each session carries a unique ID that
// tags every log line it emits.
package workflow
