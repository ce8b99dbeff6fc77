package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackwell-systems/basketminer/internal/miner"
	"github.com/blackwell-systems/basketminer/internal/output"
	"github.com/blackwell-systems/basketminer/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	watchSource     string
	watchMinSupport float64
	watchMinConf    float64

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-mine whenever the source file changes",
		Long: `Mine the source file once, then keep watching it and re-run the full
pipeline after every change. Useful while an export job keeps appending
transactions, or while hand-editing a dataset to see how the rule set
reacts.

Runs in the foreground; stop with Ctrl+C.`,
		Example: `  # Watch the bundled demonstration dataset
  basketminer watch

  # Watch a custom file with looser thresholds
  basketminer watch --source basket.csv --min-support 0.3 --min-conf 0.5`,
		RunE: runWatchCmd,
	}
)

func init() {
	watchCmd.Flags().StringVar(&watchSource, "source", defaultSource, "transaction CSV file")
	watchCmd.Flags().Float64Var(&watchMinSupport, "min-support", defaultMinSupport, "minimum itemset support, fraction in [0,1]")
	watchCmd.Flags().Float64Var(&watchMinConf, "min-conf", defaultMinConf, "minimum rule confidence, fraction in [0,1]")

	RootCmd.AddCommand(watchCmd)
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	if err := validateThresholds(watchMinSupport, watchMinConf); err != nil {
		return err
	}
	cfg := miner.Config{MinSupport: watchMinSupport, MinConf: watchMinConf}

	// Initial pass: fail fast on an unreadable source instead of silently
	// waiting for a change that may never come.
	if err := mineAndRender(watchSource, cfg); err != nil {
		return err
	}

	w, err := watcher.New(watchSource, func() {
		if err := mineAndRender(watchSource, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("\nWatching %s for changes. Press Ctrl+C to stop.\n", watchSource)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping watch...")
	return w.Stop()
}

// mineAndRender runs one pipeline pass and prints the rule table.
func mineAndRender(source string, cfg miner.Config) error {
	result, err := loadAndMine(source, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d transactions, %d frequent itemsets, %d rules:\n",
		result.Transactions, result.Frequent.Len(), len(result.Rules))
	fmt.Print(output.RenderRuleTable(result.Rules))
	return nil
}
