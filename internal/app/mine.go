package app

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/basketminer/internal/miner"
	"github.com/blackwell-systems/basketminer/internal/output"
	"github.com/blackwell-systems/basketminer/internal/store"
	"github.com/spf13/cobra"
)

var (
	mineSource     string
	mineMinSupport float64
	mineMinConf    float64
	mineSave       bool

	mineCmd = &cobra.Command{
		Use:   "mine",
		Short: "Mine association rules from a transaction file",
		Long: `Run the full mining pipeline: load the transaction file, count itemset
supports, keep the frequent itemsets, and derive confidence/lift scored
association rules.

An itemset is frequent when the fraction of transactions containing it
meets --min-support. A rule "X -> Y" is kept when the fraction of
X-containing transactions that also contain Y meets --min-conf.

Candidate generation enumerates every subset of every transaction, so
runtime and memory grow exponentially with transaction length. Typical
basket data (a handful of items per transaction) mines instantly; very
long transactions will not.

With --save, the run's configuration and rules are recorded in the local
database for later review via 'basketminer history'.`,
		Example: `  # Mine the bundled demonstration dataset
  basketminer mine

  # Mine a custom file with looser thresholds
  basketminer mine --source basket.csv --min-support 0.3 --min-conf 0.5

  # Record the run
  basketminer mine --source basket.csv --save`,
		RunE: runMine,
	}
)

func init() {
	mineCmd.Flags().StringVar(&mineSource, "source", defaultSource, "transaction CSV file")
	mineCmd.Flags().Float64Var(&mineMinSupport, "min-support", defaultMinSupport, "minimum itemset support, fraction in [0,1]")
	mineCmd.Flags().Float64Var(&mineMinConf, "min-conf", defaultMinConf, "minimum rule confidence, fraction in [0,1]")
	mineCmd.Flags().BoolVar(&mineSave, "save", false, "record the run in the database")

	RootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	if err := validateThresholds(mineMinSupport, mineMinConf); err != nil {
		return err
	}
	cfg := miner.Config{MinSupport: mineMinSupport, MinConf: mineMinConf}

	spinner := output.NewSpinner("Mining association rules")
	spinner.Start()
	result, err := loadAndMine(mineSource, cfg)
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Printf("Mined %d transactions, %d distinct items, %d frequent itemsets.\n\n",
		result.Transactions, len(result.Items), result.Frequent.Len())
	fmt.Print(output.RenderItemTable(result.Items))
	fmt.Println()
	fmt.Print(output.RenderRuleTable(result.Rules))

	if !mineSave {
		return nil
	}
	return saveRun(result, cfg)
}

// saveRun records a completed run and its rules in the database.
func saveRun(result *miner.Result, cfg miner.Config) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	runID, err := db.InsertRun(&store.Run{
		CreatedAt:    time.Now(),
		Source:       mineSource,
		MinSupport:   cfg.MinSupport,
		MinConf:      cfg.MinConf,
		Transactions: result.Transactions,
		ItemCount:    len(result.Items),
		RuleCount:    len(result.Rules),
	})
	if err != nil {
		return err
	}

	if err := db.InsertRules(runID, result.Rules); err != nil {
		return err
	}

	fmt.Printf("\nSaved as run %d. View later with 'basketminer history show %d'.\n", runID, runID)
	return nil
}
