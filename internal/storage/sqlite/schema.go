package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// table pairs a table name with its full CREATE statement so the same list
// drives initialization and verification.
type table struct {
	name string
	ddl  string
}

// columnUpgrade is an additive migration: add the column to the table if a
// database created before the column existed is missing it.
type columnUpgrade struct {
	table      string
	column     string
	definition string
}

var schemaTables = []table{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY,
	plan TEXT DEFAULT 'free',
	alerts_used INTEGER DEFAULT 0,
	last_reset TEXT,
	auto_delete_minutes INTEGER DEFAULT 0,
	joined_at TEXT DEFAULT CURRENT_TIMESTAMP,
	expiry_date TEXT,
	username TEXT
);`},
	{"alerts", `
CREATE TABLE IF NOT EXISTS alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	condition TEXT,
	target_price REAL,
	repeat INTEGER
);`},
	{"percent_alerts", `
CREATE TABLE IF NOT EXISTS percent_alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	base_price REAL,
	threshold_percent REAL,
	repeat INTEGER
);`},
	{"volume_alerts", `
CREATE TABLE IF NOT EXISTS volume_alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	multiplier REAL,
	timeframe TEXT DEFAULT '1h',
	repeat INTEGER
);`},
	{"risk_alerts", `
CREATE TABLE IF NOT EXISTS risk_alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	stop_price REAL,
	take_price REAL,
	repeat INTEGER
);`},
	{"custom_alerts", `
CREATE TABLE IF NOT EXISTS custom_alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	price_condition TEXT,
	price_value REAL,
	rsi_condition TEXT,
	rsi_value REAL,
	repeat INTEGER
);`},
	{"portfolio_alerts", `
CREATE TABLE IF NOT EXISTS portfolio_alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	amount REAL,
	direction TEXT,
	target_value REAL,
	repeat INTEGER
);`},
	{"portfolio_limits", `
CREATE TABLE IF NOT EXISTS portfolio_limits (
	user_id INTEGER PRIMARY KEY,
	max_alerts INTEGER DEFAULT 0,
	loss_limit REAL DEFAULT 0,
	profit_target REAL DEFAULT 0
);`},
	{"watchlist", `
CREATE TABLE IF NOT EXISTS watchlist (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	base_price REAL,
	threshold_percent REAL DEFAULT 0,
	timeframe TEXT DEFAULT '1h'
);`},
	{"portfolio", `
CREATE TABLE IF NOT EXISTS portfolio (
	user_id INTEGER,
	symbol TEXT,
	amount REAL,
	PRIMARY KEY (user_id, symbol)
);`},
	{"user_tasks", `
CREATE TABLE IF NOT EXISTS user_tasks (
	user_id INTEGER PRIMARY KEY,
	invited_count INTEGER DEFAULT 0,
	task2_submitted INTEGER DEFAULT 0,
	task3_submitted INTEGER DEFAULT 0,
	reward_claimed INTEGER DEFAULT 0
);`},
	{"ai_alerts", `
CREATE TABLE IF NOT EXISTS ai_alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT,
	conditions TEXT,
	summary TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	active INTEGER DEFAULT 1
);`},
	{"tracked_wallets", `
CREATE TABLE IF NOT EXISTS tracked_wallets (
	user_id INTEGER PRIMARY KEY,
	wallet_address TEXT NOT NULL
);`},
}

// columnUpgrades are applied in order on every startup. Databases created by
// older releases lack these columns; adding them never touches existing rows.
var columnUpgrades = []columnUpgrade{
	{"users", "expiry_date", "TEXT"},
	{"users", "username", "TEXT"},
	{"watchlist", "timeframe", "TEXT DEFAULT '1h'"},
}

// Init ensures every table and column exists. It is idempotent and safe to
// run on every process start; existing rows are never modified or removed.
func (s *Store) Init(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialized")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin init: %w", err)
	}
	defer tx.Rollback()

	for _, t := range schemaTables {
		if _, err := tx.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}

	for _, up := range columnUpgrades {
		cols, err := tableColumns(ctx, tx, up.table)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", up.table, err)
		}
		if cols[up.column] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", up.table, up.column, up.definition)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", up.table, up.column, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit init: %w", err)
	}
	return nil
}

// VerifySchema reports schema objects missing from the live database, as
// "table" or "table.column" names. An empty slice means the schema is complete.
func (s *Store) VerifySchema(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialized")
	}
	var missing []string
	for _, t := range schemaTables {
		var count int
		err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, t.name,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("check table %s: %w", t.name, err)
		}
		if count == 0 {
			missing = append(missing, t.name)
		}
	}
	for _, up := range columnUpgrades {
		cols, err := tableColumns(ctx, s.db, up.table)
		if err != nil {
			return nil, fmt.Errorf("inspect %s: %w", up.table, err)
		}
		if len(cols) == 0 {
			continue // table itself already reported
		}
		if !cols[up.column] {
			missing = append(missing, up.table+"."+up.column)
		}
	}
	return missing, nil
}

// querier lets tableColumns run against either the DB or an open transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func tableColumns(ctx context.Context, q querier, name string) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			colName string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[colName] = true
	}
	return cols, rows.Err()
}
