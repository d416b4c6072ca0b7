package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"vrhal/internal/common/fsutil"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr     string  `json:"addr" yaml:"addr" toml:"addr"`
	NearClip float32 `json:"near_clip" yaml:"near_clip" toml:"near_clip"`
	FarClip  float32 `json:"far_clip" yaml:"far_clip" toml:"far_clip"`
	Simulate bool    `json:"simulate" yaml:"simulate" toml:"simulate"`
	LogLevel string  `json:"log_level" yaml:"log_level" toml:"log_level"`
	AppKind  string  `json:"app_kind" yaml:"app_kind" toml:"app_kind"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	if !fsutil.PathExists(path) {
		return cfg, fmt.Errorf("config file not found: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
