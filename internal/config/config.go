// Package config reads and writes the local tool configuration under
// .crossfeed/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFile = ".crossfeed/config.json"

// Backend names for the tracker store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the persisted tool configuration.
type Config struct {
	// StoreBackend selects where tracker state lives: "file" (default) or
	// "sqlite".
	StoreBackend string `json:"store_backend,omitempty"`
}

// Load reads the config from disk. A missing file yields a zero config.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename).
func Save(baseDir string, cfg *Config) error {
	path := filepath.Join(baseDir, configFile)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

// Backend returns the configured store backend, validated, with "file" as
// the default.
func (c *Config) Backend() (string, error) {
	switch c.StoreBackend {
	case "", BackendFile:
		return BackendFile, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
}

// SetBackend validates and persists the store backend choice.
func SetBackend(baseDir, backend string) error {
	if backend != BackendFile && backend != BackendSQLite {
		return fmt.Errorf("unknown store backend %q", backend)
	}
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}
	cfg.StoreBackend = backend
	return Save(baseDir, cfg)
}
