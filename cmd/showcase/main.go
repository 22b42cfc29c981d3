package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/justchokingaround/showcase/internal/catalog"
	"github.com/justchokingaround/showcase/internal/config"
	"github.com/justchokingaround/showcase/internal/tui"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"
	// Global flags
	cfgFile  string
	dataFile string
	logLevel string
	noColor  bool

	// Global config, logger and catalog
	cfg     *config.Config
	logger  *slog.Logger
	dataset *catalog.Dataset
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Browse a catalog of shows in the terminal",
	Long: `showcase renders a catalog of shows as cards and opens a detail view
with genres, seasons and the full description for any show you pick.

The catalog is read once at startup from a JSON, YAML or sqlite file,
or from the built-in sample catalog.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for config init command
		if cmd.Name() == "init" && cmd.Parent().Name() == "config" {
			return nil
		}

		if err := config.InitializeDirs(); err != nil {
			return fmt.Errorf("failed to initialize directories: %w", err)
		}

		var err error
		var v *viper.Viper
		cfg, v, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if noColor {
			cfg.Logging.Color = false
		}
		if dataFile != "" {
			cfg.Catalog.DataFile = dataFile
		}

		logger, err = config.InitLogger(&cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With("session", uuid.NewString())

		v.OnConfigChange(func(e fsnotify.Event) {
			logger.Info("Config file changed", "name", e.Name)
			next := &config.Config{}
			if err := v.Unmarshal(next); err != nil {
				logger.Error("Failed to reload config", "error", err)
				return
			}
			if logLevel == "" {
				config.SetLevel(next.Logging.Level)
			}
		})
		v.WatchConfig()

		dataset, err = catalog.Load(cfg.Catalog.DataFile, logger)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("showcase starting...", "version", version)
		return tui.Start(dataset, cfg, logger)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/showcase/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "catalog file (.json, .yaml or sqlite); overrides catalog.data_file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

// versionCmd displays version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showcase version %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
	},
}

// configCmd handles configuration operations
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cfgFile
		if configPath == "" {
			configPath = filepath.Join(config.GetConfigDir(), "config.yaml")
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s", configPath)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := config.SaveDefaultConfig(configPath); err != nil {
			return fmt.Errorf("failed to save default configuration: %w", err)
		}

		fmt.Printf("Default configuration generated successfully at: %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		source := cfg.Catalog.DataFile
		if source == "" {
			source = "(built-in)"
		}
		fmt.Printf("Config file: %s\n", cfgFile)
		fmt.Printf("Log level: %s\n", cfg.Logging.Level)
		fmt.Printf("Catalog: %s\n", source)
		fmt.Printf("Date locale: %s\n", cfg.Catalog.DateLocale)
		fmt.Printf("Mouse: %t\n", cfg.UI.Mouse)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			fmt.Println(cfgFile)
		} else {
			fmt.Println(config.GetConfigDir())
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
