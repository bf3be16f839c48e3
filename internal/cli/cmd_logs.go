package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Delfictus/Prism-Tuning/internal/fsutil"
)

func (c *CLI) logsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List recent solver logs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := fsutil.RecentFiles(c.app.Cfg().LogsDir, ".log", limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(infos) == 0 {
				fmt.Fprintln(out, "No logs found.")
				return nil
			}
			for _, fi := range infos {
				fmt.Fprintf(out, "%s (%.1fMB, %s)\n",
					filepath.Base(fi.Path),
					float64(fi.Size)/(1024*1024),
					fi.ModTime.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of logs to list.")
	return cmd
}
