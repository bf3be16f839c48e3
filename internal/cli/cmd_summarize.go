package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Delfictus/Prism-Tuning/internal/report"
	"github.com/Delfictus/Prism-Tuning/internal/wrlog"
)

func (c *CLI) summarizeCmd() *cobra.Command {
	var csvAppend, jsonOut string
	cmd := &cobra.Command{
		Use:   "summarize LOG",
		Short: "Distill a solver log into a structured summary",
		Long: "Scans the log once and prints a human-readable summary. With\n" +
			"--csv-append the summary also lands as one row in an append-only CSV;\n" +
			"with --json-out the full summary is dumped as a JSON document.\n" +
			"Seed and profile are inferred from the --base-config filename when\n" +
			"one is given. Exits 2 when the log cannot be read.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath := args[0]
			sum, err := wrlog.SummarizeFile(logPath)
			if err != nil {
				var rerr *wrlog.ReadError
				if errors.As(err, &rerr) {
					return &ExitError{Code: 2, Message: fmt.Sprintf("[summarize] failed to read log: %v", rerr.Err)}
				}
				return err
			}

			// The raw flag value, not the resolved default: an omitted
			// base config means seed and profile are simply unknown.
			meta := report.NewMeta(logPath, c.baseConfig)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.Render(sum, meta))

			if csvAppend != "" {
				if err := report.AppendCSV(csvAppend, report.ToCSVRow(sum, meta)); err != nil {
					return err
				}
				fmt.Fprintf(out, "[summary] appended CSV row -> %s\n", csvAppend)
			}
			if jsonOut != "" {
				if err := report.WriteJSON(jsonOut, sum, meta); err != nil {
					return err
				}
				fmt.Fprintf(out, "[summary] wrote JSON -> %s\n", jsonOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvAppend, "csv-append", "", "Append the summary row to this CSV file.")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "Write the full JSON summary to this file.")
	return cmd
}
