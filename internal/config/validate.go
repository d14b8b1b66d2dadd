package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateIconSet(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.KitDir) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/iconkit/config.toml"
		}
		return fmt.Errorf("paths.kit_dir is required. Set ICONKIT_KIT_DIR env var or edit %s (create with 'iconkit config init')", defaultPath)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		return errors.New("paths.staging_dir must be set")
	}
	return nil
}

func (c *Config) validateIconSet() error {
	prefix := c.IconSet.Prefix
	for _, r := range prefix {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return fmt.Errorf("iconset.prefix %q may only contain lowercase letters, digits, and hyphens", prefix)
		}
	}
	if strings.HasPrefix(prefix, "-") || strings.HasSuffix(prefix, "-") {
		return fmt.Errorf("iconset.prefix %q must not start or end with a hyphen", prefix)
	}
	if c.IconSet.DefaultDimension <= 0 {
		return errors.New("iconset.default_dimension must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
