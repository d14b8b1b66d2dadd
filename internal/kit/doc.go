// Package kit models the FontAwesome source bundle: its fixed directory
// layout, the icon metadata document, and the structural validation that
// gates a conversion pass.
//
// Layout exposes path arithmetic and style discovery; LoadMetadata decodes
// icons.json into an explicit name-keyed map owned by the caller. Validation
// aggregates every missing or invalid required path into one error so a
// broken kit is reported completely before any icon is touched.
package kit
