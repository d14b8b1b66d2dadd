// Package config loads, normalizes, and validates iconkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ICONKIT_KIT_DIR. The Config type centralizes every knob the CLI needs,
// allowing kit/output/staging directories and icon-set attribution to be
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
