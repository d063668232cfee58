package config

import "time"

// Config represents user settings read from disk.
// Every field has a default, so a missing file is not an error.
type Config struct {
	Binary        string        `mapstructure:"binary"`
	Extension     string        `mapstructure:"extension"`
	Tmux          string        `mapstructure:"tmux"`
	ReuseDelay    time.Duration `mapstructure:"reuse_delay"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Once          bool          `mapstructure:"once"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Binary:        "just",
		Extension:     ".just",
		Tmux:          "tmux",
		ReuseDelay:    100 * time.Millisecond,
		SweepInterval: time.Second,
	}
}
