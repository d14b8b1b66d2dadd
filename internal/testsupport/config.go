package testsupport

import (
	"path/filepath"
	"sort"
	"testing"

	"iconkit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.KitDir = filepath.Join(base, "kit")
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithStyles restricts the configured icon-set styles. The list is sorted to
// match the invariant config.Load establishes during normalization.
func WithStyles(styles ...string) ConfigOption {
	return func(cfg *config.Config) {
		sorted := append([]string(nil), styles...)
		sort.Strings(sorted)
		cfg.IconSet.Styles = sorted
	}
}

// WithPrefix overrides the icon-set prefix on the test config.
func WithPrefix(prefix string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.IconSet.Prefix = prefix
	}
}
