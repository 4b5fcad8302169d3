// ABOUTME: Sheet connection configuration and credential handling
// ABOUTME: XDG-path JSON persistence with environment variable overrides
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ErrInvalidScriptURL rejects endpoint URLs that are not the web-app
// deployment URL. The editor URL looks similar but never ends in /exec.
var ErrInvalidScriptURL = errors.New("invalid script URL: use the Web App URL ending in /exec, not the editor URL")

// SheetConfig selects the backend. An empty ScriptURL selects mock mode;
// AppPassword is the shared secret sent with every request in remote mode.
type SheetConfig struct {
	ScriptURL   string `json:"scriptUrl,omitempty"`
	AppPassword string `json:"appPassword,omitempty"`
}

// IsRemote reports whether a script endpoint is configured.
func (c *SheetConfig) IsRemote() bool {
	return c.ScriptURL != ""
}

// Validate applies the client-side pre-flight rule: a non-empty endpoint
// URL must end with the literal /exec deployment suffix.
func (c *SheetConfig) Validate() error {
	if c.ScriptURL != "" && !strings.HasSuffix(c.ScriptURL, "/exec") {
		return ErrInvalidScriptURL
	}
	return nil
}

// Dir returns the XDG-compliant directory for roster configuration.
func Dir() string {
	return filepath.Join(xdg.DataHome, "roster")
}

// Path returns the XDG-compliant path of the sheet config file.
func Path() string {
	return filepath.Join(Dir(), "sheet-config.json")
}

// Load reads the sheet config from disk. A missing file returns an empty
// (mock mode) config. Environment variables override file values:
// - ROSTER_SCRIPT_URL
// - ROSTER_APP_PASSWORD.
func Load() (*SheetConfig, error) {
	cfg := &SheetConfig{}

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open sheet config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode sheet config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *SheetConfig) {
	if url := os.Getenv("ROSTER_SCRIPT_URL"); url != "" {
		cfg.ScriptURL = url
	}
	if pw := os.Getenv("ROSTER_APP_PASSWORD"); pw != "" {
		cfg.AppPassword = pw
	}
}

// Save validates and writes the sheet config with restricted permissions.
// Validation happens here, before any network use of the config, so a
// malformed URL never reaches the transport.
func Save(cfg *SheetConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sheet config: %w", err)
	}

	if err := os.WriteFile(Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write sheet config: %w", err)
	}
	return nil
}
