package miner

// SupportCounts maps itemsets to the number of transactions that contain
// them. Go map iteration order is randomized, so the counter also records
// the first-insertion order of its keys; every iteration over the counter
// uses that order, which keeps rule ordering reproducible across runs.
type SupportCounts struct {
	counts map[string]int
	sets   map[string]Itemset
	order  []string
	total  int
}

func newSupportCounts(total int) *SupportCounts {
	return &SupportCounts{
		counts: make(map[string]int),
		sets:   make(map[string]Itemset),
		total:  total,
	}
}

// CountItemsets enumerates every subset of every transaction and counts, per
// itemset, the number of transactions it occurs in. Each (transaction,
// subset) pair increments the counter once: counting is per-transaction
// presence, not per occurrence.
func CountItemsets(transactions []Transaction) *SupportCounts {
	sc := newSupportCounts(len(transactions))
	for _, t := range transactions {
		for _, set := range Subsets(t) {
			sc.add(set, 1)
		}
	}
	return sc
}

func (sc *SupportCounts) add(set Itemset, n int) {
	key := set.Key()
	if _, seen := sc.counts[key]; !seen {
		sc.order = append(sc.order, key)
		sc.sets[key] = set
	}
	sc.counts[key] += n
}

// Count returns the transaction count recorded for the itemset, or zero if
// the itemset was never counted.
func (sc *SupportCounts) Count(set Itemset) int {
	return sc.counts[set.Key()]
}

// Total returns the fixed number of transactions the counts were taken over.
func (sc *SupportCounts) Total() int {
	return sc.total
}

// Len returns the number of distinct itemsets recorded.
func (sc *SupportCounts) Len() int {
	return len(sc.counts)
}

// Support returns the itemset's relative frequency, count / total.
func (sc *SupportCounts) Support(set Itemset) float64 {
	return float64(sc.Count(set)) / float64(sc.total)
}

// Itemsets returns the recorded itemsets in first-insertion order.
func (sc *SupportCounts) Itemsets() []Itemset {
	sets := make([]Itemset, len(sc.order))
	for i, key := range sc.order {
		sets[i] = sc.sets[key]
	}
	return sets
}

// Each calls fn for every recorded itemset in first-insertion order.
func (sc *SupportCounts) Each(fn func(set Itemset, count int)) {
	for _, key := range sc.order {
		fn(sc.sets[key], sc.counts[key])
	}
}

// Filter returns the itemsets whose relative frequency meets minSupport.
// The comparison is inclusive: count/total == minSupport passes. Insertion
// order of the surviving entries is preserved, and the total carries over
// unchanged.
func (sc *SupportCounts) Filter(minSupport float64) *SupportCounts {
	out := newSupportCounts(sc.total)
	for _, key := range sc.order {
		if float64(sc.counts[key])/float64(sc.total) >= minSupport {
			out.add(sc.sets[key], sc.counts[key])
		}
	}
	return out
}
