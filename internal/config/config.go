package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Account AccountConfig `toml:"account"`
	General GeneralConfig `toml:"general"`
	Cache   CacheConfig   `toml:"cache"`
}

// AccountConfig holds portal credentials. Both fields are optional;
// the environment and the interactive prompt are consulted when they
// are empty, so nothing forces the password onto disk.
type AccountConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type GeneralConfig struct {
	Language       string `toml:"language"`
	RefreshMinutes int    `toml:"refresh_minutes"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogLevel       string `toml:"log_level"`
}

// CacheConfig controls the session cache. An empty Path means the
// default location under the XDG state directory.
type CacheConfig struct {
	Path     string `toml:"path"`
	Disabled bool   `toml:"disabled"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Language:       "en",
			RefreshMinutes: 15,
			TimeoutSeconds: 10,
			LogLevel:       "warn",
		},
	}
}

func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "telemeter", "config.toml")
}

// stateDir returns the per-user state directory. Sessions and logs are
// state, not configuration: losing them costs one extra login.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "telemeter")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "telemeter-state"
	}
	return filepath.Join(home, ".local", "state", "telemeter")
}

func DefaultCachePath() string {
	return filepath.Join(stateDir(), "sessions.db")
}

func DefaultLogDir() string {
	return filepath.Join(stateDir(), "logs")
}

// CachePath resolves the configured cache location, falling back to
// the default when unset.
func (c Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	return DefaultCachePath()
}

func (c Config) Timeout() time.Duration {
	if c.General.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.General.TimeoutSeconds) * time.Second
}

func (c Config) RefreshInterval() time.Duration {
	if c.General.RefreshMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.General.RefreshMinutes) * time.Minute
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	// 0600: the account section may hold a password.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
