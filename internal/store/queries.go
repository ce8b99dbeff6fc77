package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blackwell-systems/basketminer/internal/miner"
)

// Run operations

// InsertRun saves a run record and returns its ID.
func (s *Store) InsertRun(run *Run) (int64, error) {
	query := `
		INSERT INTO runs (created_at, source, min_support, min_conf, transactions, item_count, rule_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		run.CreatedAt.Format(time.RFC3339),
		run.Source,
		run.MinSupport,
		run.MinConf,
		run.Transactions,
		run.ItemCount,
		run.RuleCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return id, nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id int64) (*Run, error) {
	query := `
		SELECT id, created_at, source, min_support, min_conf, transactions, item_count, rule_count
		FROM runs
		WHERE id = ?
	`

	var run Run
	var createdAt string

	err := s.db.QueryRow(query, id).Scan(
		&run.ID,
		&createdAt,
		&run.Source,
		&run.MinSupport,
		&run.MinConf,
		&run.Transactions,
		&run.ItemCount,
		&run.RuleCount,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for run %d: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns() ([]*Run, error) {
	query := `
		SELECT id, created_at, source, min_support, min_conf, transactions, item_count, rule_count
		FROM runs
		ORDER BY id DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var createdAt string

		if err := rows.Scan(
			&run.ID,
			&createdAt,
			&run.Source,
			&run.MinSupport,
			&run.MinConf,
			&run.Transactions,
			&run.ItemCount,
			&run.RuleCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for run %d: %w", run.ID, err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// Rule operations

// InsertRules saves a run's rules in their emitted order. Position preserves
// that order for later retrieval.
func (s *Store) InsertRules(runID int64, rules []miner.Rule) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO rules (run_id, position, antecedent, consequent, confidence, lift)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare rule insert: %w", err)
	}
	defer stmt.Close()

	for i, rule := range rules {
		antecedent, err := json.Marshal(rule.Antecedent)
		if err != nil {
			return fmt.Errorf("failed to marshal antecedent: %w", err)
		}
		consequent, err := json.Marshal(rule.Consequent)
		if err != nil {
			return fmt.Errorf("failed to marshal consequent: %w", err)
		}

		if _, err := stmt.Exec(runID, i, string(antecedent), string(consequent), rule.Confidence, rule.Lift); err != nil {
			return fmt.Errorf("failed to insert rule %d for run %d: %w", i, runID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rules: %w", err)
	}
	return nil
}

// GetRules retrieves a run's rules in their original emitted order.
func (s *Store) GetRules(runID int64) ([]miner.Rule, error) {
	query := `
		SELECT antecedent, consequent, confidence, lift
		FROM rules
		WHERE run_id = ?
		ORDER BY position
	`

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rules for run %d: %w", runID, err)
	}
	defer rows.Close()

	var rules []miner.Rule
	for rows.Next() {
		var rule miner.Rule
		var antecedent, consequent string

		if err := rows.Scan(&antecedent, &consequent, &rule.Confidence, &rule.Lift); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		if err := json.Unmarshal([]byte(antecedent), &rule.Antecedent); err != nil {
			return nil, fmt.Errorf("failed to unmarshal antecedent: %w", err)
		}
		if err := json.Unmarshal([]byte(consequent), &rule.Consequent); err != nil {
			return nil, fmt.Errorf("failed to unmarshal consequent: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rules: %w", err)
	}
	return rules, nil
}
