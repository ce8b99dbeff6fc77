package app

import (
	"fmt"
	"sort"

	"github.com/blackwell-systems/basketminer/internal/loader"
	"github.com/blackwell-systems/basketminer/internal/miner"
	"github.com/blackwell-systems/basketminer/internal/output"
	"github.com/spf13/cobra"
)

var (
	itemsSource string

	itemsCmd = &cobra.Command{
		Use:   "items",
		Short: "List the distinct items of a transaction file",
		Long: `Show the universe of distinct items seen across all transactions, with
the number of transactions each item occurs in and its relative support.

Useful for choosing a --min-support value before mining: items far below
the threshold cannot appear in any frequent itemset.`,
		Example: `  # Items of the bundled demonstration dataset
  basketminer items

  # Items of a custom file
  basketminer items --source basket.csv`,
		RunE: runItems,
	}
)

func init() {
	itemsCmd.Flags().StringVar(&itemsSource, "source", defaultSource, "transaction CSV file")

	RootCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) error {
	transactions, err := loader.ReadFile(itemsSource)
	if err != nil {
		return err
	}

	// Count whole transactions per item directly; enumerating all subsets
	// just to read back the singletons would be wasted work here.
	counts := make(map[string]int)
	for _, t := range transactions {
		seen := make(map[string]bool, len(t))
		for _, item := range t {
			if !seen[item] {
				seen[item] = true
				counts[item]++
			}
		}
	}

	items := make([]miner.ItemSupport, 0, len(counts))
	for item, count := range counts {
		items = append(items, miner.ItemSupport{
			Item:    item,
			Count:   count,
			Support: float64(count) / float64(len(transactions)),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Item < items[j].Item })

	fmt.Printf("%d distinct items across %d transactions.\n\n", len(items), len(transactions))
	fmt.Print(output.RenderItemTable(items))
	return nil
}
