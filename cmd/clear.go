package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nacho114/harpoon/internal/logging"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all bookmarks for the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}
		defer w.close()

		if err := w.store.Clear(w.sessionName); err != nil {
			return fmt.Errorf("clearing bookmarks: %w", err)
		}
		logging.Info("bookmarks cleared", "session", w.sessionName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
