package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ai_manager_backend/pkg/utils"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver
)

// schema is shared by both drivers. Every collection lives in the records
// table, one JSON payload per row, ordered by seq within its kind.
const schema = `
CREATE TABLE IF NOT EXISTS records (
	kind    TEXT   NOT NULL,
	id      TEXT   NOT NULL,
	seq     BIGINT NOT NULL,
	payload TEXT   NOT NULL,
	PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS records_kind_seq_idx ON records (kind, seq);
`

// Open connects to the database behind driver ("postgres" or "sqlite"),
// verifies the connection and applies the schema.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", driver, err)
	}

	if err := applySchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}

	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"driver": driver})
	return db, nil
}

// applySchema executes the schema one statement at a time.
func applySchema(ctx context.Context, db *sql.DB, driver string) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not apply %s schema: %w", driver, err)
		}
	}
	return nil
}
