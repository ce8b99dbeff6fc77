package store

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    source TEXT NOT NULL,
    min_support REAL NOT NULL,
    min_conf REAL NOT NULL,
    transactions INTEGER NOT NULL,
    item_count INTEGER NOT NULL,
    rule_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rules (
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    antecedent TEXT NOT NULL,
    consequent TEXT NOT NULL,
    confidence REAL NOT NULL,
    lift REAL NOT NULL,
    PRIMARY KEY (run_id, position),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_rules_run ON rules(run_id, position);
`
