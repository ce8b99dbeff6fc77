package miner

import (
	"reflect"
	"testing"
)

// exampleTransactions is the five-basket dataset used across the miner
// tests, already in canonical (sorted) form.
func exampleTransactions() []Transaction {
	return []Transaction{
		{"bread", "milk"},
		{"beer", "bread", "diaper", "eggs"},
		{"beer", "cola", "diaper", "milk"},
		{"beer", "bread", "diaper", "milk"},
		{"bread", "cola", "diaper", "milk"},
	}
}

func TestCountItemsets_SingletonCounts(t *testing.T) {
	counts := CountItemsets(exampleTransactions())

	tests := []struct {
		set  Itemset
		want int
	}{
		{Itemset{"bread"}, 4},
		{Itemset{"milk"}, 4},
		{Itemset{"diaper"}, 4},
		{Itemset{"beer"}, 3},
		{Itemset{"cola"}, 2},
		{Itemset{"eggs"}, 1},
	}

	for _, tt := range tests {
		if got := counts.Count(tt.set); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.set, got, tt.want)
		}
	}
}

func TestCountItemsets_PairAndTripleCounts(t *testing.T) {
	counts := CountItemsets(exampleTransactions())

	tests := []struct {
		set  Itemset
		want int
	}{
		{Itemset{"bread", "milk"}, 3},
		{Itemset{"bread", "diaper"}, 3},
		{Itemset{"diaper", "milk"}, 3},
		{Itemset{"beer", "diaper"}, 3},
		{Itemset{"beer", "bread"}, 2},
		{Itemset{"bread", "diaper", "milk"}, 2},
		{Itemset{"beer", "bread", "diaper", "eggs"}, 1},
	}

	for _, tt := range tests {
		if got := counts.Count(tt.set); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.set, got, tt.want)
		}
	}
}

func TestCountItemsets_NeverExceedsTotal(t *testing.T) {
	counts := CountItemsets(exampleTransactions())

	counts.Each(func(set Itemset, count int) {
		if count <= 0 {
			t.Errorf("Count(%s) = %d, want > 0", set, count)
		}
		if count > counts.Total() {
			t.Errorf("Count(%s) = %d exceeds total %d", set, count, counts.Total())
		}
	})
}

func TestCountItemsets_UnknownItemsetIsZero(t *testing.T) {
	counts := CountItemsets(exampleTransactions())

	if got := counts.Count(Itemset{"caviar"}); got != 0 {
		t.Errorf("Count of unseen itemset = %d, want 0", got)
	}
}

func TestSupportCounts_InsertionOrder(t *testing.T) {
	counts := CountItemsets([]Transaction{
		{"a", "b"},
		{"b", "c"},
	})

	want := []Itemset{
		{"a"}, {"b"}, {"a", "b"},
		{"c"}, {"b", "c"},
	}
	got := counts.Itemsets()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("insertion order = %v, want %v", got, want)
	}
}

func TestFilter_InclusiveThreshold(t *testing.T) {
	counts := CountItemsets(exampleTransactions())

	// beer appears in exactly 3 of 5 transactions; 0.6 must pass.
	frequent := counts.Filter(0.6)
	if frequent.Count(Itemset{"beer"}) != 3 {
		t.Errorf("beer (support exactly 0.6) should survive Filter(0.6)")
	}
	if frequent.Count(Itemset{"cola"}) != 0 {
		t.Errorf("cola (support 0.4) should not survive Filter(0.6)")
	}
}

func TestFilter_PreservesTotalAndOrder(t *testing.T) {
	counts := CountItemsets(exampleTransactions())
	frequent := counts.Filter(0.6)

	if frequent.Total() != counts.Total() {
		t.Errorf("Filter changed total: %d, want %d", frequent.Total(), counts.Total())
	}

	want := []Itemset{
		{"bread"}, {"milk"}, {"bread", "milk"},
		{"beer"}, {"diaper"},
		{"beer", "diaper"}, {"bread", "diaper"}, {"diaper", "milk"},
	}
	got := frequent.Itemsets()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("frequent itemset order = %v, want %v", got, want)
	}
}

func TestFilter_Monotone(t *testing.T) {
	counts := CountItemsets(exampleTransactions())

	thresholds := []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0}
	prev := -1
	for i := len(thresholds) - 1; i >= 0; i-- {
		n := counts.Filter(thresholds[i]).Len()
		if prev >= 0 && n < prev {
			t.Errorf("Filter(%g) kept %d itemsets, fewer than Filter(%g)'s %d",
				thresholds[i], n, thresholds[i+1], prev)
		}
		prev = n
	}

	// Subset property: everything surviving a higher threshold survives a
	// lower one.
	strict := counts.Filter(0.8)
	loose := counts.Filter(0.4)
	strict.Each(func(set Itemset, count int) {
		if loose.Count(set) != count {
			t.Errorf("itemset %s survives 0.8 but not 0.4", set)
		}
	})
}
