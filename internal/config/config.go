// internal/config/config.go
//
// This package handles configuration and the ~/.riseshine directory
// structure. Everything the app persists (config, logs, records) lives
// under that one home directory.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/riseshine/internal/i18n"
)

const (
	// AppDirName is the dot-directory created under the user's home.
	AppDirName = ".riseshine"

	// HomeEnv overrides the default home directory location.
	HomeEnv = "RISESHINE_HOME"

	// BackendFile stores records in JSON/text files.
	BackendFile = "file"
	// BackendSQLite stores records in a SQLite database.
	BackendSQLite = "sqlite"
)

// StorageConfig selects the record store backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

// RiddleConfig points the riddle game at its content provider. The API
// key itself never lives in the file, only the env var name that holds it.
type RiddleConfig struct {
	Model     string `yaml:"model"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// FileConfig models ~/.riseshine/config.yaml.
type FileConfig struct {
	Version  int           `yaml:"version"`
	Language string        `yaml:"language"`
	Storage  StorageConfig `yaml:"storage"`
	Riddle   RiddleConfig  `yaml:"riddle"`
}

// Config holds the runtime configuration.
type Config struct {
	// Home is the app's data directory (default ~/.riseshine).
	Home string

	File FileConfig
}

// DefaultHome resolves the app home: RISESHINE_HOME if set, otherwise
// ~/.riseshine.
func DefaultHome() (string, error) {
	if env := strings.TrimSpace(os.Getenv(HomeEnv)); env != "" {
		return filepath.Clean(env), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, AppDirName), nil
}

// Load creates the home directory structure if needed and reads
// config.yaml, applying defaults for anything absent.
func Load(home string) (*Config, error) {
	if home == "" {
		resolved, err := DefaultHome()
		if err != nil {
			return nil, err
		}
		home = resolved
	}
	for _, dir := range []string{home, filepath.Join(home, "logs"), filepath.Join(home, "data")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("config: ensure %s: %w", dir, err)
		}
	}

	cfg := &Config{Home: home, File: defaultFileConfig()}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version:  1,
		Language: string(i18n.LangEN),
		Storage:  StorageConfig{Backend: BackendFile},
		Riddle: RiddleConfig{
			Model:     "gemini-2.0-flash",
			APIKeyEnv: "GEMINI_API_KEY",
		},
	}
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Home, "config.yaml")
}

// LogPath returns the logbook file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.Home, "logs", "riseshine.log")
}

// DataDir returns the directory holding record storage.
func (c *Config) DataDir() string {
	return filepath.Join(c.Home, "data")
}

// Language returns the configured display language.
func (c *Config) Language() i18n.Language {
	return i18n.Language(c.File.Language)
}

// SetLanguage updates the display language and persists the change.
func (c *Config) SetLanguage(lang i18n.Language) error {
	c.File.Language = string(lang)
	return c.Save()
}

// APIKey reads the riddle provider key from the configured env var.
func (c *Config) APIKey() string {
	if c.File.Riddle.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.File.Riddle.APIKeyEnv)
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", c.ConfigPath(), err)
	}

	parsed := defaultFileConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.ConfigPath(), err)
	}
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.File = parsed
	return nil
}

// Save writes the current configuration back to config.yaml.
func (c *Config) Save() error {
	c.File.normalize()
	if err := c.File.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.Home, 0o755); err != nil {
		return fmt.Errorf("config: ensure home dir: %w", err)
	}
	data, err := yaml.Marshal(c.File)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write config: %w", err)
	}
	return nil
}

func (fc *FileConfig) normalize() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	fc.Language = strings.ToLower(strings.TrimSpace(fc.Language))
	if fc.Language == "" {
		fc.Language = string(i18n.LangEN)
	}
	fc.Storage.Backend = strings.ToLower(strings.TrimSpace(fc.Storage.Backend))
	if fc.Storage.Backend == "" {
		fc.Storage.Backend = BackendFile
	}
	fc.Riddle.Model = strings.TrimSpace(fc.Riddle.Model)
	fc.Riddle.Endpoint = strings.TrimSpace(fc.Riddle.Endpoint)
	fc.Riddle.APIKeyEnv = strings.TrimSpace(fc.Riddle.APIKeyEnv)
}

func (fc FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	switch fc.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q", BackendFile, BackendSQLite)
	}
	known := false
	for _, lang := range i18n.Languages() {
		if fc.Language == string(lang) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("language %q is not supported", fc.Language)
	}
	return nil
}
