package config

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvEnginePath overrides Ghostscript discovery when set.
const EnvEnginePath = "PDF_SHRINKER_GS"

// engineNames are the conventional Ghostscript executable names, in lookup
// order. The Windows names cover installs that only ship the console binary.
var engineNames = []string{"gs", "gswin64c", "gswin32c"}

// Config holds application configuration
type Config struct {
	EnginePath    string
	AppDataDir    string
	HistoryDBPath string
}

// New creates a new configuration instance. A .env file in the working
// directory is honored when present; missing files are not an error.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.setupDirectories()
	cfg.setupEnginePath()
	return cfg
}

func (c *Config) setupDirectories() {
	c.AppDataDir = appDataDir()
	os.MkdirAll(c.AppDataDir, 0755)
	c.HistoryDBPath = filepath.Join(c.AppDataDir, "history.sqlite3")
}

func (c *Config) setupEnginePath() {
	if path := os.Getenv(EnvEnginePath); path != "" {
		c.EnginePath = path
		return
	}
	for _, name := range engineNames {
		if path, err := exec.LookPath(name); err == nil {
			c.EnginePath = path
			return
		}
	}
}

func appDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pdf-shrinker")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".pdf-shrinker")
}
