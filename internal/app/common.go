package app

import (
	"fmt"

	"github.com/blackwell-systems/basketminer/internal/loader"
	"github.com/blackwell-systems/basketminer/internal/miner"
)

// defaultSource is the bundled demonstration dataset.
const defaultSource = "testdata/basket.csv"

// Default thresholds when not supplied on the command line.
const (
	defaultMinSupport = 0.5
	defaultMinConf    = 0.75
)

// validateThresholds rejects support/confidence values outside [0, 1].
// The miner itself does not validate ranges; commands do it at the edge.
func validateThresholds(minSupport, minConf float64) error {
	if minSupport < 0 || minSupport > 1 {
		return fmt.Errorf("--min-support must be in [0, 1], got %g", minSupport)
	}
	if minConf < 0 || minConf > 1 {
		return fmt.Errorf("--min-conf must be in [0, 1], got %g", minConf)
	}
	return nil
}

// loadAndMine runs the full pipeline for the given source and thresholds.
func loadAndMine(source string, cfg miner.Config) (*miner.Result, error) {
	transactions, err := loader.ReadFile(source)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("%s contains no transactions", source)
	}

	result, err := miner.New(cfg).Mine(transactions)
	if err != nil {
		return nil, fmt.Errorf("mining failed: %w", err)
	}
	return result, nil
}
