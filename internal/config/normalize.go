package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeMedia()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		c.Paths.DatabasePath = defaultDatabasePath
	}
	if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.CSVName = strings.TrimSpace(c.Output.CSVName)
	if c.Output.CSVName == "" {
		c.Output.CSVName = defaultCSVName
	}
	c.Output.ReportName = strings.TrimSpace(c.Output.ReportName)
	if c.Output.ReportName == "" {
		c.Output.ReportName = defaultReportName
	}
	c.Output.ThumbnailDir = strings.TrimSpace(c.Output.ThumbnailDir)
	if c.Output.ThumbnailDir == "" {
		c.Output.ThumbnailDir = defaultThumbnailDir
	}
}

func (c *Config) normalizeMedia() {
	c.Media.FFmpegBinary = strings.TrimSpace(c.Media.FFmpegBinary)
	if c.Media.FFmpegBinary == "" {
		c.Media.FFmpegBinary = defaultFFmpegBinary
	}
	if c.Media.DefaultFPS == 0 {
		c.Media.DefaultFPS = defaultFPS
	}
	if c.Media.ProbeTimeout == 0 {
		c.Media.ProbeTimeout = defaultProbeTimeout
	}
	if c.Media.ExtractTimeout == 0 {
		c.Media.ExtractTimeout = defaultExtractTimeout
	}
	if c.Media.ThumbnailMaxWidth == 0 {
		c.Media.ThumbnailMaxWidth = defaultThumbnailMaxWidth
	}
	if c.Media.ThumbnailMaxHeight == 0 {
		c.Media.ThumbnailMaxHeight = defaultThumbnailMaxHeight
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
