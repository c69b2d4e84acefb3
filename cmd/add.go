package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nacho114/harpoon/internal/logging"
)

var flagAddAll bool

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Harpoon the current pane",
	Long: `Harpoon the currently focused pane without opening the overlay.

Intended for a multiplexer keybinding, e.g. in tmux:

    bind-key a run-shell "harpoon add"

With --all, every live pane in the session is added instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w, err := openWorkspace(ctx)
		if err != nil {
			return err
		}
		defer w.close()

		added := 0
		if flagAddAll {
			for _, p := range w.snap.Panes {
				if w.list.Add(p) {
					added++
				}
			}
		} else {
			focused, ok := w.snap.Focused()
			if !ok {
				return fmt.Errorf("no panes found")
			}
			if w.list.Add(focused) {
				added++
			}
		}

		w.tel.Metrics.RecordAdd(ctx, added)
		if err := w.save(); err != nil {
			return fmt.Errorf("saving bookmarks: %w", err)
		}
		logging.Info("panes added", "count", added, "session", w.sessionName)
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&flagAddAll, "all", false, "harpoon every live pane")
	rootCmd.AddCommand(addCmd)
}
