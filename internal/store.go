package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvBinary    = "JUSTRUN_BINARY"
	EnvExtension = "JUSTRUN_EXTENSION"
)

// DefaultPath returns ~/.config/justrun/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "justrun", "config.yaml"), nil
}

// LoadConfig reads config from path (or returns defaults if missing) and
// applies environment overrides. An empty path means DefaultPath.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg, os.Getenv)
	normalize(&cfg)
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvBinary)); v != "" {
		cfg.Binary = v
	}
	if v := strings.TrimSpace(getenv(EnvExtension)); v != "" {
		cfg.Extension = v
	}
}

func normalize(cfg *Config) {
	def := Default()
	if cfg.Binary == "" {
		cfg.Binary = def.Binary
	}
	if cfg.Tmux == "" {
		cfg.Tmux = def.Tmux
	}
	if cfg.Extension == "" {
		cfg.Extension = def.Extension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.ReuseDelay < 0 {
		cfg.ReuseDelay = def.ReuseDelay
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = def.SweepInterval
	}
}
