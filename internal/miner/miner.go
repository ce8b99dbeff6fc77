// Package miner implements frequent-itemset mining and association rule
// generation over canonicalized basket transactions.
//
// The pipeline is a single linear pass: enumerate every subset of every
// transaction, count per-transaction presence of each itemset, keep the
// itemsets meeting the minimum support, then derive confidence/lift scored
// rules from the survivors. All intermediate structures are built once and
// never mutated afterwards.
//
// The itemset counter is the memory bound: its key space grows exponentially
// with average transaction length. That is an accepted property of the
// enumerate-then-filter design, not something the miner works around.
package miner

import "sort"

// Miner runs the mining pipeline with a fixed configuration.
type Miner struct {
	cfg Config
}

// New creates a Miner with the given thresholds.
func New(cfg Config) *Miner {
	return &Miner{cfg: cfg}
}

// Mine runs the full pipeline over the transaction set and returns the
// complete result: the distinct item universe with singleton supports, the
// frequent itemsets, and the scored rules. Mining is a pure function of
// (transactions, config); identical inputs produce identical results,
// including rule order.
func (m *Miner) Mine(transactions []Transaction) (*Result, error) {
	counts := CountItemsets(transactions)
	frequent := counts.Filter(m.cfg.MinSupport)

	rules, err := GenerateRules(frequent, m.cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Transactions: len(transactions),
		Items:        itemUniverse(counts),
		Frequent:     frequent,
		Rules:        rules,
	}, nil
}

// itemUniverse collects the singleton itemset supports, sorted by item
// label. Singleton counts double as the distinct-item universe: every item
// of every transaction was counted as a size-1 subset.
func itemUniverse(counts *SupportCounts) []ItemSupport {
	var items []ItemSupport
	counts.Each(func(set Itemset, count int) {
		if len(set) != 1 {
			return
		}
		items = append(items, ItemSupport{
			Item:    set[0],
			Count:   count,
			Support: float64(count) / float64(counts.Total()),
		})
	})
	sort.Slice(items, func(i, j int) bool {
		return items[i].Item < items[j].Item
	})
	return items
}
