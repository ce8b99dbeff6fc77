package miner

import "fmt"

// GenerateRules derives association rules from the frequent itemsets.
//
// For each frequent itemset S of size k and each antecedent size i in
// [1, k-1], every size-i sub-combination of S is a candidate antecedent x
// with consequent S \ x. A rule is kept when its confidence,
// count(S)/count(x), meets MinConf.
//
// Lift uses a denominator shared by the whole size-i slice: the product of
// the relative supports of ALL size-i candidates, not just the antecedent at
// hand. That denominator is part of the scoring contract and is kept as is.
//
// Rules are emitted grouped by frequent itemset in first-insertion order,
// then by ascending antecedent size, then in candidate enumeration order.
// There is no secondary sort by score.
//
// Support is anti-monotone, so every sub-combination of a frequent itemset
// is itself frequent and carries a positive count. A missing count therefore
// indicates a broken counter, not bad input, and aborts rule generation.
func GenerateRules(frequent *SupportCounts, cfg Config) ([]Rule, error) {
	total := float64(frequent.Total())

	var rules []Rule
	for _, set := range frequent.Itemsets() {
		setCount := frequent.Count(set)

		for size := 1; size < len(set); size++ {
			candidates := combinations(Transaction(set), size)

			denom := 1.0
			for _, c := range candidates {
				count := frequent.Count(c)
				if count == 0 {
					return nil, fmt.Errorf("no support recorded for %s (sub-combination of %s): counter is inconsistent", c, set)
				}
				denom *= float64(count) / total
			}
			lift := float64(setCount) / total / denom

			for _, x := range candidates {
				confidence := float64(setCount) / float64(frequent.Count(x))
				if confidence < cfg.MinConf {
					continue
				}
				rules = append(rules, Rule{
					Antecedent: x,
					Consequent: difference(set, x),
					Confidence: confidence,
					Lift:       lift,
				})
			}
		}
	}
	return rules, nil
}

// difference removes the positions of sub from set. sub must be a positional
// sub-combination of set, which every candidate antecedent is.
func difference(set, sub Itemset) Itemset {
	out := make(Itemset, 0, len(set)-len(sub))
	j := 0
	for _, item := range set {
		if j < len(sub) && item == sub[j] {
			j++
			continue
		}
		out = append(out, item)
	}
	return out
}
