package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hwu/statbar/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history <github|scholar>",
	Short: "Show recorded snapshots for a data source",
	Long: `History lists snapshots recorded on past successful fetches, newest
first, with the change against the previous snapshot. The github trend
tracks total stars received; the scholar trend tracks total citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of snapshots to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	var identity, statName string
	switch args[0] {
	case "github":
		identity = viper.GetString("github.username")
		statName = "Stars"
	case "scholar":
		identity = viper.GetString("scholar.author_id")
		statName = "Citations"
	default:
		return fmt.Errorf("unknown source %q (want github or scholar)", args[0])
	}
	if identity == "" {
		return fmt.Errorf("no identity configured for source %q", args[0])
	}

	path := historyPath()
	if path == "" {
		return fmt.Errorf("history is disabled: no database path available")
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	points, err := store.Trend(cmd.Context(), args[0], identity, limit)
	if err != nil {
		return err
	}

	history.FormatTrend(points, statName, cmd.OutOrStdout())
	return nil
}

// historyPath resolves the snapshot database location.
func historyPath() string {
	if p := viper.GetString("history.db_path"); p != "" {
		return p
	}
	return history.DefaultPath()
}

// recordSnapshot appends a snapshot after a successful live fetch. Any
// failure is reported to stderr and otherwise ignored: history must never
// break the rendered menu.
func recordSnapshot(ctx context.Context, dbPath, source, identity string, stat int, record any) {
	if dbPath == "" {
		return
	}
	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, source, identity, stat, record); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history: %v\n", err)
	}
}
