package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateFingerprint(); err != nil {
		return err
	}
	return c.validatePreview()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateFingerprint() error {
	if c.Fingerprint.Workers < 0 {
		return errors.New("fingerprint.workers must be zero or positive")
	}
	return nil
}

func (c *Config) validatePreview() error {
	if c.Preview.Rows < 1 {
		return errors.New("preview.rows must be at least 1")
	}
	return nil
}
