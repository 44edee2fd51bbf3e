package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/msto63/roboarena/internal/store"
)

var (
	historyLimit  int
	historyWinner string
	historyReason string
	pruneOlder    time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored matches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one stored match",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show wins per robot",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old matches",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd, historyStatsCmd, historyPruneCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of matches to list")
	historyCmd.Flags().StringVar(&historyWinner, "winner", "", "only matches won by this robot")
	historyCmd.Flags().StringVar(&historyReason, "reason", "", "only matches that ended for this reason")
	historyPruneCmd.Flags().DurationVar(&pruneOlder, "older-than", 30*24*time.Hour, "age of matches to delete")
}

func openStore() (*store.HistoryStore, error) {
	return store.Open(store.Config{Path: cfg.StorePath()})
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), store.Filter{
		Winner: historyWinner,
		Reason: historyReason,
		Limit:  historyLimit,
	})
	if err != nil {
		return err
	}
	renderHistory(cmd.OutOrStdout(), records)
	return nil
}

// renderHistory prints records as a table
func renderHistory(out io.Writer, records []store.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "no matches stored")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Started", "Scenario", "Winner", "Ticks", "Reason"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, r := range records {
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		table.Append([]string{
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Scenario,
			winner,
			strconv.Itoa(r.Ticks),
			r.Reason,
		})
	}
	table.Render()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	r, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "match    %s\n", r.ID)
	fmt.Fprintf(out, "scenario %s\n", r.Scenario)
	fmt.Fprintf(out, "started  %s (%s)\n", r.StartedAt.Local().Format(time.RFC3339), r.FinishedAt.Sub(r.StartedAt))
	fmt.Fprintf(out, "result   %s after %d tick(s)\n", r.Reason, r.Ticks)
	if r.Winner != "" {
		fmt.Fprintf(out, "winner   %s\n", r.Winner)
	}
	if r.Error != "" {
		fmt.Fprintf(out, "error    %s\n", r.Error)
	}
	fmt.Fprintf(out, "program A\n  %s\n", r.ProgramA)
	fmt.Fprintf(out, "program B\n  %s\n", r.ProgramB)
	for _, rs := range r.Robots {
		fmt.Fprintf(out, "%-6s fuel %d, barrels %d, rams %d\n", rs.Name, rs.Fuel, rs.Collected, rs.Rams)
	}
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Robot", "Wins"})
	table.SetBorder(false)
	for name, wins := range stats.Wins {
		table.Append([]string{name, strconv.Itoa(wins)})
	}
	table.SetFooter([]string{fmt.Sprintf("%d matches", stats.Matches), fmt.Sprintf("%d draws", stats.Draws)})
	table.Render()
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Prune(cmd.Context(), pruneOlder)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d match(es)\n", n)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
