package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Nacho114/harpoon/internal/logging"
)

var jumpCmd = &cobra.Command{
	Use:   "jump <index>",
	Short: "Focus the Nth favorited pane",
	Long: `Focus the pane at the given 1-based list position.

Intended for multiplexer keybindings, e.g. in tmux:

    bind-key -n M-1 run-shell "harpoon jump 1"
    bind-key -n M-2 run-shell "harpoon jump 2"

An index with no live pane behind it (list too short, or the pane closed)
is a silent no-op with exit code 0, so keybindings never flash errors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}

		ctx := cmd.Context()
		w, err := openWorkspace(ctx)
		if err != nil {
			return err
		}
		defer w.close()

		e, ok := w.list.At(idx - 1)
		if !ok {
			logging.Debug("jump index out of range", "index", idx, "len", w.list.Len())
			return nil
		}

		if err := w.mux.FocusPane(ctx, e.Ref); err != nil {
			return fmt.Errorf("focusing pane: %w", err)
		}
		w.tel.Metrics.RecordJump(ctx, "cli")
		logging.Info("jumped to pane", "index", idx, "pane", e.Ref.PaneID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jumpCmd)
}
