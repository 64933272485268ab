package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	SaveDirectory string `toml:"save_directory"`
	Confirmations bool   `toml:"confirmations"`
	StateBackend  string `toml:"state_backend"`
	StatePath     string `toml:"state_path"`
	SurfaceWidth  int    `toml:"surface_width"`
	SurfaceHeight int    `toml:"surface_height"`
	LogFile       string `toml:"log_file"`
	Verbose       bool   `toml:"verbose"`

	home string
}

func defaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Confirmations: true,
		StateBackend:  "file",
		SurfaceWidth:  defaultSurfaceWidth,
		SurfaceHeight: defaultSurfaceHeight,
		home:          home,
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hueforge.toml"
	}
	return filepath.Join(home, ".hueforge.toml")
}

// loadConfig reads path on top of the defaults. A missing file is not an
// error; a malformed one returns the defaults along with the error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if _, err := os.Stat(path); err != nil {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return defaultConfig(), errors.Wrapf(err, "parse %s", path)
	}
	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	c.StateBackend = strings.ToLower(strings.TrimSpace(c.StateBackend))
	c.SaveDirectory = c.expandPath(c.SaveDirectory)
	c.StatePath = c.expandPath(c.StatePath)
	c.LogFile = c.expandPath(c.LogFile)
	if c.SurfaceWidth < minSurfaceWidth {
		c.SurfaceWidth = minSurfaceWidth
	}
	if c.SurfaceHeight < minSurfaceHeight {
		c.SurfaceHeight = minSurfaceHeight
	}
}

func (c *Config) expandPath(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") && c.home != "" {
		value = filepath.Join(c.home, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// statePath is where the state backend lives, defaulting to name under
// the user config directory.
func (c *Config) statePath(name string) string {
	if c.StatePath != "" {
		return c.StatePath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "hueforge", name)
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
