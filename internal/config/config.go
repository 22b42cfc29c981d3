package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
}

// LoggingConfig controls the slog logger and its rotating file
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"` // text or json
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
	Color      bool   `mapstructure:"color" yaml:"color"`
}

// CatalogConfig selects the dataset and how its dates are shown
type CatalogConfig struct {
	// DataFile is a .json, .yaml or sqlite catalog. Empty uses the built-in one.
	DataFile   string `mapstructure:"data_file" yaml:"data_file"`
	DateLocale string `mapstructure:"date_locale" yaml:"date_locale"`
}

// UIConfig holds terminal UI options
type UIConfig struct {
	Mouse     bool `mapstructure:"mouse" yaml:"mouse"`
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   false,
			Color:      true,
		},
		Catalog: CatalogConfig{
			DateLocale: "en-US",
		},
		UI: UIConfig{
			Mouse:     true,
			AltScreen: true,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.compress", d.Logging.Compress)
	v.SetDefault("logging.color", d.Logging.Color)

	v.SetDefault("catalog.data_file", d.Catalog.DataFile)
	v.SetDefault("catalog.date_locale", d.Catalog.DateLocale)

	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
}

// Load reads the configuration file (or the default location when cfgFile is
// empty), a .env file in the working directory, and SHOWCASE_* variables.
// The returned viper instance is used for hot reload.
func Load(cfgFile string) (*Config, *viper.Viper, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(GetConfigDir())
	}

	v.SetEnvPrefix("SHOWCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, v, nil
}

// SaveDefaultConfig writes the default configuration to path
func SaveDefaultConfig(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitializeDirs creates the config and state directories
func InitializeDirs() error {
	for _, dir := range []string{GetConfigDir(), filepath.Join(getStateDir(), "showcase")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetConfigDir returns $XDG_CONFIG_HOME/showcase
func GetConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "showcase")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "showcase")
	}
	return filepath.Join(home, ".config", "showcase")
}

func getStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state")
	}
	return filepath.Join(home, ".local", "state")
}
