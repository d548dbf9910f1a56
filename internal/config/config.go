package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Intake   IntakeConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings. An empty path disables the
// submission store; the diagnostic log handoff always runs.
type DatabaseConfig struct {
	Path string
}

// IntakeConfig holds organization-facing settings.
type IntakeConfig struct {
	ServiceName string `mapstructure:"service_name"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ToastSeconds int  `mapstructure:"toast_seconds"`
	AltScreen    bool `mapstructure:"alt_screen"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// CAREINTAKE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "careintake", "careintake.db"))
	v.SetDefault("intake.service_name", "Child Support Services")
	v.SetDefault("ui.toast_seconds", 3)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CAREINTAKE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "careintake"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAREINTAKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.ToastSeconds < 1 {
		c.UI.ToastSeconds = 3
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("CAREINTAKE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "careintake", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("intake.service_name", cfg.Intake.ServiceName)
	v.Set("ui.toast_seconds", cfg.UI.ToastSeconds)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
