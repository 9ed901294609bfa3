package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the veil configuration.
type Config struct {
	Endpoint       string `json:"endpoint"`
	APIKey         string `json:"apiKey,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
	Verbose        bool   `json:"verbose"`
}

// Default returns a Config with all defaults applied. The default endpoint is
// the hosted DLP service; any endpoint speaking the same content:redact API
// can be substituted.
func Default() Config {
	return Config{
		Endpoint:       "https://dlp.googleapis.com",
		TimeoutSeconds: 120,
	}
}

// ConfigDir returns the platform-appropriate config directory for veil.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "veil"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "veil"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "veil"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "veil"), nil
	default:
		return filepath.Join(home, ".config", "veil"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file, owner-readable only since it
// may hold an API key.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
// A .env file in the working directory is applied to the environment first,
// best-effort.
func Load(overrides map[string]string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	// JSON zero value for bool is false, so a file can raise verbosity but
	// never lower it below the default.
	dst.Verbose = dst.Verbose || src.Verbose
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("VEIL_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("VEIL_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("VEIL_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VEIL_TIMEOUT_SECONDS must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	}
	if v := strings.TrimSpace(os.Getenv("VEIL_VERBOSE")); v != "" {
		cfg.Verbose = parseBool(v)
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["endpoint"]; ok && v != "" {
		cfg.Endpoint = v
	}
	if v, ok := overrides["verbose"]; ok && v != "" {
		cfg.Verbose = parseBool(v)
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

// SetField sets a single config field by key name. Returns error if key is
// unknown. apiKey is rejected; the key is only ever read from VEIL_API_KEY
// or an existing file.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "endpoint":
		cfg.Endpoint = value
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "verbose":
		cfg.Verbose = parseBool(value)
	case "apiKey":
		return fmt.Errorf("apiKey cannot be stored with config set; export VEIL_API_KEY instead")
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
