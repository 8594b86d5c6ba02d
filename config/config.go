// Package config provides runtime configuration and the persisted user
// preferences (custom YouTube API key, selected brand).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the immutable configuration a batch runs with. A snapshot is
// taken when the batch starts, so preference changes made mid-batch do not
// affect work already in flight.
type Config struct {
	YouTubeAPIKey string
	OpenAIAPIKey  string
	Brand         string
	LogLevel      string
}

// Load assembles the effective configuration: CLI/env-bound viper values
// overridden by stored preferences where those are set. Precedence for the
// YouTube key: stored custom key > configured key. Precedence for the
// brand: explicit configuration > stored preference > default.
func Load(v *viper.Viper, prefs *Preferences) Config {
	cfg := Config{
		YouTubeAPIKey: v.GetString("youtube-api-key"),
		OpenAIAPIKey:  v.GetString("openai-api-key"),
		Brand:         v.GetString("brand"),
		LogLevel:      v.GetString("log-level"),
	}

	if prefs != nil {
		if key := prefs.CustomYouTubeAPIKey(); key != "" {
			cfg.YouTubeAPIKey = key
		}
		if cfg.Brand == "" {
			cfg.Brand = prefs.SelectedBrand()
		}
	}

	return cfg
}

// Preference storage keys.
const (
	prefKeyCustomYouTubeAPIKey = "custom_youtube_api_key"
	prefKeySelectedBrand       = "selected_brand"
)

// Preferences is the small persisted preference store: two string values in
// a YAML file under the user's config directory.
type Preferences struct {
	v    *viper.Viper
	path string
}

// DefaultPreferencesPath returns the standard location of the preferences
// file.
func DefaultPreferencesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config directory: %w", err)
	}
	return filepath.Join(dir, "channel-categorizer", "preferences.yaml"), nil
}

// OpenPreferences loads the preference file at path, treating a missing
// file as empty preferences.
func OpenPreferences(path string) (*Preferences, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read preferences: %w", err)
			}
		}
	}

	return &Preferences{v: v, path: path}, nil
}

// CustomYouTubeAPIKey returns the stored API key override, "" when unset.
func (p *Preferences) CustomYouTubeAPIKey() string {
	return p.v.GetString(prefKeyCustomYouTubeAPIKey)
}

// SetCustomYouTubeAPIKey stores an API key override. An empty key clears
// the override, reverting to the configured default.
func (p *Preferences) SetCustomYouTubeAPIKey(key string) error {
	p.v.Set(prefKeyCustomYouTubeAPIKey, key)
	return p.write()
}

// SelectedBrand returns the stored brand preference, "" when unset.
func (p *Preferences) SelectedBrand() string {
	return p.v.GetString(prefKeySelectedBrand)
}

// SetSelectedBrand stores the brand preference.
func (p *Preferences) SetSelectedBrand(brand string) error {
	p.v.Set(prefKeySelectedBrand, brand)
	return p.write()
}

func (p *Preferences) write() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := p.v.WriteConfigAs(p.path); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
