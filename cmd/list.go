package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the favorites list",
	Long: `Print the favorites list for the current session, one entry per line,
resolved against live panes. Bookmarks whose pane is not currently live
are listed last with a "gone" marker; they re-attach automatically when
a matching pane appears.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}
		defer w.close()

		i := 1
		for _, e := range w.list.Entries() {
			fmt.Printf("%d\t%s\n", i, e.DisplayName())
			i++
		}
		for _, b := range w.rec.PendingBookmarks() {
			fmt.Printf("%d\t%s | %s\t(gone)\n", i, b.TabName, b.PaneTitle)
			i++
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
