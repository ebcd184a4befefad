package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/binzume/fbxbake/baker"
)

// Config holds the tool settings. Priority: defaults < file < flags.
type Config struct {
	OutputDir string `toml:"output_dir"`
	Preview   bool   `toml:"preview"`

	Baker struct {
		KeepWinding           bool `toml:"keep_winding"`
		NoPostRotationInverse bool `toml:"no_post_rotation_inverse"`
	} `toml:"baker"`
}

func defaultConfig() *Config {
	return &Config{OutputDir: "baked"}
}

// loadConfig reads the explicit path, or fbxbake.toml next to the inputs
// if present.
func loadConfig(path, inputDir string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = filepath.Join(inputDir, "fbxbake.toml")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) bakerOptions() *baker.Options {
	return &baker.Options{
		KeepWinding:           c.Baker.KeepWinding,
		NoPostRotationInverse: c.Baker.NoPostRotationInverse,
	}
}
