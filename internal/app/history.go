package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/basketminer/internal/output"
	"github.com/blackwell-systems/basketminer/internal/store"
	"github.com/spf13/cobra"
)

var (
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List saved mining runs",
		Long: `List runs recorded with 'basketminer mine --save', newest first.

Each entry shows the run ID, source file, thresholds, and headline counts.
Use 'basketminer history show <id>' to re-render a saved run's rules.`,
		Example: `  # List saved runs
  basketminer history

  # Re-render run 3's rules
  basketminer history show 3`,
		RunE: runHistory,
	}

	historyShowCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show the rules of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
)

func init() {
	historyCmd.AddCommand(historyShowCmd)
	RootCmd.AddCommand(historyCmd)
}

// openStore opens the history database and ensures the schema exists.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.CreateSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return db, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderRunTable(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := db.GetRun(id)
	if err != nil {
		return err
	}
	rules, err := db.GetRules(id)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d: %s (min-support %.2f, min-conf %.2f, %d transactions)\n\n",
		run.ID, run.Source, run.MinSupport, run.MinConf, run.Transactions)
	fmt.Print(output.RenderRuleTable(rules))
	return nil
}
