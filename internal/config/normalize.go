package config

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIconSet()
	c.normalizeConvert()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.KitDir == "" {
		if value, ok := os.LookupEnv("ICONKIT_KIT_DIR"); ok {
			c.Paths.KitDir = value
		}
	}
	if c.Paths.KitDir, err = expandPath(c.Paths.KitDir); err != nil {
		return fmt.Errorf("paths.kit_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeIconSet() {
	c.IconSet.Prefix = strings.TrimSpace(strings.ToLower(c.IconSet.Prefix))
	if c.IconSet.Prefix == "" {
		c.IconSet.Prefix = defaultPrefix
	}
	c.IconSet.DisplayName = strings.TrimSpace(c.IconSet.DisplayName)
	if c.IconSet.DisplayName == "" {
		c.IconSet.DisplayName = defaultDisplayName
	}
	c.IconSet.Version = strings.TrimSpace(c.IconSet.Version)
	if c.IconSet.Version == "" {
		c.IconSet.Version = defaultVersion
	}
	if c.IconSet.DefaultDimension <= 0 {
		c.IconSet.DefaultDimension = defaultDimension
	}

	seen := make(map[string]struct{}, len(c.IconSet.Styles))
	styles := make([]string, 0, len(c.IconSet.Styles))
	for _, style := range c.IconSet.Styles {
		style = strings.TrimSpace(strings.ToLower(style))
		if style == "" {
			continue
		}
		if _, ok := seen[style]; ok {
			continue
		}
		seen[style] = struct{}{}
		styles = append(styles, style)
	}
	sort.Strings(styles)
	c.IconSet.Styles = styles
}

func (c *Config) normalizeConvert() {
	if c.Convert.Jobs <= 0 {
		c.Convert.Jobs = defaultJobs
	}
	if max := runtime.NumCPU() * 4; c.Convert.Jobs > max {
		c.Convert.Jobs = max
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
