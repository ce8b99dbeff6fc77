package store

import "time"

// Run records the configuration and headline numbers of one completed
// mining run.
type Run struct {
	ID           int64
	CreatedAt    time.Time
	Source       string
	MinSupport   float64
	MinConf      float64
	Transactions int
	ItemCount    int
	RuleCount    int
}
