// Package textutil provides small string helpers shared across iconkit,
// notably style-name normalization for store keys and humanized labels for
// exported icon-set metadata.
package textutil
