package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awray/coasterlog/internal/nav"
	"github.com/awray/coasterlog/internal/store"
)

// Settings holds all configuration options.
type Settings struct {
	// DataDir is where persisted user state lives.
	DataDir string `json:"data_dir"`

	// StoreBackend selects the key-value store: "file", "sqlite" or "memory".
	StoreBackend string `json:"store_backend"`

	// HomeMode is the home screen shown on startup: "map" or "list".
	HomeMode string `json:"home_mode"`

	// LogFile is where structured logs are written.
	LogFile string `json:"log_file"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	base := filepath.Join(homeDir, ".coasterlog")
	return &Settings{
		DataDir:      base,
		StoreBackend: store.BackendFile,
		HomeMode:     nav.ModeMap.String(),
		LogFile:      filepath.Join(base, "coasterlog.log"),
		Verbose:      false,
	}
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".coasterlog", "config.json")
}

// Load reads settings from a JSON file. A missing file yields defaults; a
// present but malformed file is an error, because silently ignoring a file
// the user wrote hides their mistake.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("malformed settings file %q: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Mode converts the configured home mode to a nav.Mode. Anything other
// than "list" falls back to the map.
func (s *Settings) Mode() nav.Mode {
	if s.HomeMode == nav.ModeList.String() {
		return nav.ModeList
	}
	return nav.ModeMap
}
