package miner

// Subsets returns every non-empty subset of the transaction, smallest sizes
// first, combinations within a size in lexicographic position order. A
// transaction of length n yields 2^n - 1 itemsets. Items are taken by
// position, so a repeated label in the transaction is preserved in its
// subsets rather than deduplicated.
//
// Cost is exponential in transaction length. Candidates are generated
// unconditionally and filtered by support afterwards; there is no level-wise
// pruning before counting.
func Subsets(t Transaction) []Itemset {
	sets := make([]Itemset, 0, (1<<uint(len(t)))-1)
	for size := 1; size <= len(t); size++ {
		sets = append(sets, combinations(t, size)...)
	}
	return sets
}

// combinations returns all size-k selections of t in lexicographic position
// order, each as a fresh Itemset.
func combinations(t Transaction, k int) []Itemset {
	if k <= 0 || k > len(t) {
		return nil
	}

	var out []Itemset
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		set := make(Itemset, k)
		for i, j := range idx {
			set[i] = t[j]
		}
		out = append(out, set)

		// Advance to the next index tuple, rightmost position first.
		i := k - 1
		for i >= 0 && idx[i] == len(t)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
