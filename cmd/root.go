package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Nacho114/harpoon/internal/config"
	"github.com/Nacho114/harpoon/internal/logging"
	"github.com/Nacho114/harpoon/internal/mux"
	"github.com/Nacho114/harpoon/internal/store"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	flagMux     string
	flagDB      string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "harpoon",
	Short: "Favorites list for terminal multiplexer panes",
	Long: `harpoon keeps a per-session favorites list of terminal multiplexer panes.

Pin the panes you jump between often, then reopen the overlay (or use the
jump command from a keybinding) to focus any of them instantly. Closed panes
fall off the list automatically and renamed panes keep up with the registry.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", envOrDefault("HARPOON_MUX", ""), "terminal multiplexer: tmux, zellij (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", envOrDefault("HARPOON_DB_PATH", ""), "path to the bookmark database (default: $XDG_STATE_HOME/harpoon/state.db)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "debug logging to the log file")
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagMux != "" {
		cfg.Mux = flagMux
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// getMultiplexer returns the configured or auto-detected multiplexer.
func getMultiplexer(cfg *config.Config) (mux.Multiplexer, error) {
	return mux.FromName(cfg.Mux)
}

// openStore opens the bookmark database at the configured path.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.DBPath != "" {
		return store.OpenAt(cfg.DBPath)
	}
	return store.Open()
}

// initLogging sets up file logging. A failed init leaves the discard logger
// in place; the command keeps running without logs.
func initLogging(cfg *config.Config) {
	_ = logging.Init(cfg.LogLevel)
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
