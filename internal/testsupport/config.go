package testsupport

import (
	"path/filepath"
	"testing"

	"tabhash/internal/config"
)

// NewConfig produces a config that routes log output into a temp
// directory so tests never touch the user's home.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Directory = filepath.Join(t.TempDir(), "logs")
	return &cfg
}
