package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Nacho114/harpoon/internal/logging"
)

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Drop a favorited pane by list position",
	Long: `Drop the entry at the given 1-based list position.

An out-of-range index is a silent no-op, matching the overlay's behavior.`,
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

		e, ok := w.list.RemoveAt(idx - 1)
		if !ok {
			return nil
		}

		w.tel.Metrics.RecordRemove(ctx)
		if err := w.save(); err != nil {
			return fmt.Errorf("saving bookmarks: %w", err)
		}
		logging.Info("pane removed", "index", idx, "pane", e.Ref.PaneID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
