package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const envPrefix = "PICODISKCHECK_"

type Config struct {
	LogLevel   string        `json:"log_level"`
	LsblkPath  string        `json:"lsblk_path"`
	Timeout    time.Duration `json:"-"`
	ConfigFile string        `json:"-"`
}

// fileConfig mirrors Config for JSON files, with the timeout as a duration string
type fileConfig struct {
	LogLevel  *string `json:"log_level"`
	LsblkPath *string `json:"lsblk_path"`
	Timeout   *string `json:"timeout"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LsblkPath: "lsblk",
	}
}

// BindFlags registers the configuration flags on fs, writing into cfg
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error, fatal, or panic")
	fs.StringVar(&cfg.LsblkPath, "lsblk", cfg.LsblkPath, "Block device listing command used on POSIX hosts")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Deadline for OS queries, 0 disables it")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to JSON configuration file")
}

// Resolve layers the config file and environment under the flags the user set
// explicitly, then validates the result. Precedence, lowest first: defaults,
// config file, environment, flags.
func (cfg *Config) Resolve(fs *pflag.FlagSet) error {
	flagged := *cfg

	if cfg.ConfigFile != "" {
		if err := cfg.loadFromFile(cfg.ConfigFile); err != nil {
			return err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return err
	}

	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			switch f.Name {
			case "log-level":
				cfg.LogLevel = flagged.LogLevel
			case "lsblk":
				cfg.LsblkPath = flagged.LsblkPath
			case "timeout":
				cfg.Timeout = flagged.Timeout
			}
		})
	}

	return cfg.validate()
}

func (cfg *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %v", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid config file format: %v", err)
	}

	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LsblkPath != nil {
		cfg.LsblkPath = *fc.LsblkPath
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config file: %v", err)
		}
		cfg.Timeout = d
	}
	return nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LSBLK"); ok && v != "" {
		cfg.LsblkPath = v
	}
	if v, ok := lookup(envPrefix + "TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sTIMEOUT: %v", envPrefix, err)
		}
		cfg.Timeout = d
	}
	return nil
}

func (cfg *Config) validate() error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level value: %s", cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.LsblkPath) == "" {
		return fmt.Errorf("lsblk command must not be empty")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be zero or positive")
	}
	return nil
}
