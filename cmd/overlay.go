package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nacho114/harpoon/internal/logging"
	"github.com/Nacho114/harpoon/internal/model"
	"github.com/Nacho114/harpoon/internal/otel"
	"github.com/Nacho114/harpoon/internal/overlay"
	"github.com/Nacho114/harpoon/internal/store"
)

var (
	flagTheme     string
	flagRefresh   string
	flagNoPersist bool
)

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Open the interactive favorites list",
	Long: `Open the favorites list as a full-screen overlay.

Keys: j/k or arrows move, a harpoons the focused pane, A harpoons every
pane, d removes the selected entry, enter jumps to it, q/esc closes.
The list refreshes from the multiplexer on an interval; closed panes
disappear and renamed panes update in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagTheme != "" {
			cfg.Theme = flagTheme
		}
		if flagRefresh != "" {
			cfg.Refresh = flagRefresh
			if cfg.RefreshDuration, err = time.ParseDuration(flagRefresh); err != nil {
				return fmt.Errorf("invalid refresh interval %q: %w", flagRefresh, err)
			}
		}
		initLogging(cfg)
		defer logging.Shutdown()

		ctx := cmd.Context()

		otel.Version = Version
		tel, err := otel.Init(ctx, otel.OTELConfig{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			tel.Shutdown(sctx)
		}()

		m, err := getMultiplexer(cfg)
		if err != nil {
			return err
		}

		sessionName, err := m.SessionName(ctx)
		if err != nil {
			return fmt.Errorf("resolving session: %w", err)
		}

		self, err := m.Self(ctx)
		if err != nil {
			logging.Warn("resolving own pane failed", "error", err)
			self = model.PaneRef{}
		}

		var st *store.Store
		if !flagNoPersist {
			st, err = openStore(cfg)
			if err != nil {
				logging.Warn("opening store failed, running without persistence", "error", err)
			} else {
				defer st.Close()
			}
		}

		logging.Info("overlay opened", "session", sessionName, "mux", m.Name())

		tui := &overlay.TUI{
			Mux:             m,
			Store:           st,
			SessionName:     sessionName,
			Self:            self,
			RefreshInterval: cfg.RefreshDuration,
			ThemeName:       cfg.Theme,
			Metrics:         tel.Metrics,
		}
		return tui.Run(ctx)
	},
}

func init() {
	overlayCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light")
	overlayCmd.Flags().StringVar(&flagRefresh, "refresh", "", "snapshot refresh interval, e.g. 500ms (0 disables)")
	overlayCmd.Flags().BoolVar(&flagNoPersist, "no-persist", false, "do not load or save bookmarks")
	rootCmd.AddCommand(overlayCmd)
}
