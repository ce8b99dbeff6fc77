package miner

import "strings"

// keySep separates items inside an itemset key. The loader splits rows on
// commas, so item labels can never contain the unit separator.
const keySep = "\x1f"

// Transaction is one basket's item labels in canonical ascending order.
// Canonical order makes subset enumeration and itemset identity independent
// of the order items appeared in the source row.
type Transaction []string

// Itemset is a non-empty, order-canonicalized selection of items drawn from
// one transaction. Identity is the sequence itself: two itemsets with the
// same items in the same order are the same itemset.
type Itemset []string

// Key returns the canonical map key for the itemset.
func (is Itemset) Key() string {
	return strings.Join(is, keySep)
}

// String renders the itemset as {a, b, c} for display.
func (is Itemset) String() string {
	return "{" + strings.Join(is, ", ") + "}"
}

// Config carries the mining thresholds. Both values are fractions in [0, 1];
// the miner does not validate ranges, callers do.
type Config struct {
	MinSupport float64
	MinConf    float64
}

// Rule is one association "antecedent -> consequent" derived from a frequent
// itemset. Antecedent and Consequent are disjoint and their union is the
// originating itemset.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Confidence float64
	Lift       float64
}

// ItemSupport is one item of the distinct universe with its singleton
// transaction count and relative support.
type ItemSupport struct {
	Item    string
	Count   int
	Support float64
}

// Result is the complete outcome of one mining run.
type Result struct {
	Transactions int
	Items        []ItemSupport // distinct universe, sorted by item label
	Frequent     *SupportCounts
	Rules        []Rule
}
