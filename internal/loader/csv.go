// Package loader reads delimited-text transaction files into the canonical
// form the miner consumes.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/blackwell-systems/basketminer/internal/miner"
)

// ReadFile loads a comma-separated transaction file. The first record is a
// header and is discarded; every following record is one transaction whose
// fields are item labels.
func ReadFile(path string) ([]miner.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file: %w", err)
	}
	defer f.Close()

	transactions, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return transactions, nil
}

// Parse reads comma-separated records from r and returns the canonicalized
// transaction set. Each row's items are sorted ascending so that itemset
// identity does not depend on the order items appeared in the row. Identical
// rows are kept as separate transactions. Blank records and empty fields are
// skipped; embedded delimiters are not supported.
func Parse(r io.Reader) ([]miner.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // transactions have varying lengths
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found (expected a header row)")
	}

	var transactions []miner.Transaction
	for _, record := range records[1:] {
		t := make(miner.Transaction, 0, len(record))
		for _, item := range record {
			if item == "" {
				continue
			}
			t = append(t, item)
		}
		if len(t) == 0 {
			continue
		}
		sort.Strings(t)
		transactions = append(transactions, t)
	}
	return transactions, nil
}
