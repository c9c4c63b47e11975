// Package cli implements habitctl, which computes board statistics from a
// TOML board file without running the server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

// Execute is the main entry point called from cmd/habitctl.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(out io.Writer) *cobra.Command {
	var (
		boardPath string
		period    int
	)

	root := &cobra.Command{
		Use:          "habitctl",
		Short:        "Habit board analytics",
		Long:         "Compute completion statistics for a habit board described in a TOML file.",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&boardPath, "board", "b", "board.toml", "Board file")
	root.PersistentFlags().IntVarP(&period, "period", "n", 0, "Override the period length in days")

	root.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print board statistics as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := LoadBoardFile(boardPath, period)
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), analytics.ComputeBoard(board))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "days",
		Short: "Print day and week labels of the board period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := LoadBoardFile(boardPath, period)
			if err != nil {
				return err
			}
			return writeDays(cmd.OutOrStdout(), board.Period)
		},
	})

	return root
}

func writeStats(w io.Writer, stats domain.Statistics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

func writeDays(w io.Writer, p domain.Period) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tNAME\tWEEK")
	for _, d := range p.DayLabels() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Day, d.Name, domain.WeekLabel(d.Week))
	}
	return tw.Flush()
}
