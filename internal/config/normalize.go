package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizePreview()
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Directory = strings.TrimSpace(c.Logging.Directory)
	if c.Logging.Directory != "" {
		expanded, err := expandPath(c.Logging.Directory)
		if err != nil {
			return fmt.Errorf("logging.directory: %w", err)
		}
		c.Logging.Directory = expanded
	}
	return nil
}

func (c *Config) normalizePreview() {
	if c.Preview.Rows == 0 {
		c.Preview.Rows = defaultPreviewRows
	}
}
