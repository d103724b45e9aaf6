package repository

import "database/sql"

// runMigrations creates the schema if it does not exist yet. Statements are
// idempotent so startup can always run them.
func runMigrations(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			creation_time BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			invite_token TEXT NOT NULL UNIQUE,
			created_by TEXT NOT NULL REFERENCES users(id),
			creation_time BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS group_members (
			group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users(id),
			PRIMARY KEY (group_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
			description TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			paid_by TEXT NOT NULL REFERENCES users(id),
			created_by TEXT NOT NULL REFERENCES users(id),
			split_type TEXT NOT NULL,
			creation_time BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expense_splits (
			expense_id TEXT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users(id),
			owed_amount DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (expense_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS settlements (
			id TEXT PRIMARY KEY,
			group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
			from_user TEXT NOT NULL REFERENCES users(id),
			to_user TEXT NOT NULL REFERENCES users(id),
			amount DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL,
			creation_time BIGINT NOT NULL,
			settled_at BIGINT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
