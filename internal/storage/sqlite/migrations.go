package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Payments and selected players cascade with their match; players are NOT
// referenced with foreign keys so that deleting a player leaves historical
// matches intact (dangling player ids are tolerated).
const schema = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    upi_id TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS matches (
    id TEXT PRIMARY KEY,
    opponent_team TEXT NOT NULL,
    total_fees REAL NOT NULL,
    match_date TEXT NOT NULL,
    per_player_amount REAL NOT NULL,
    core_share_extra REAL NOT NULL,
    total_players INTEGER NOT NULL,
    core_players INTEGER NOT NULL,
    self_paid_players INTEGER NOT NULL,
    unpaid_players INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS match_players (
    match_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    player_id TEXT NOT NULL,
    PRIMARY KEY (match_id, position),
    FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS payments (
    match_id TEXT NOT NULL,
    player_id TEXT NOT NULL,
    amount REAL NOT NULL,
    paid INTEGER NOT NULL DEFAULT 0,
    paid_by TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (match_id, player_id),
    FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS exports (
    id TEXT PRIMARY KEY,
    match_id TEXT NOT NULL,
    filename TEXT NOT NULL,
    opponent_team TEXT NOT NULL,
    total_fees REAL NOT NULL,
    match_data TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_match_players_match_id ON match_players(match_id);
CREATE INDEX IF NOT EXISTS idx_payments_match_id ON payments(match_id);
CREATE INDEX IF NOT EXISTS idx_exports_match_id ON exports(match_id);
CREATE INDEX IF NOT EXISTS idx_players_name ON players(name COLLATE NOCASE);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
