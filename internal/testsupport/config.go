// Package testsupport provides shared fixtures for shotsync tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"shotsync/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.DatabasePath = filepath.Join(base, "shotsync.db")
	return &cfg
}
