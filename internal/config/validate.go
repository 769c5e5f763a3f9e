package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMedia() error {
	if c.Media.DefaultFPS <= 0 {
		return fmt.Errorf("media.default_fps must be positive, got %d", c.Media.DefaultFPS)
	}
	if c.Media.ProbeTimeout <= 0 {
		return errors.New("media.probe_timeout must be positive")
	}
	if c.Media.ExtractTimeout <= 0 {
		return errors.New("media.extract_timeout must be positive")
	}
	if c.Media.ThumbnailMaxWidth <= 0 || c.Media.ThumbnailMaxHeight <= 0 {
		return errors.New("media.thumbnail_max_width and media.thumbnail_max_height must be positive")
	}
	return nil
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
