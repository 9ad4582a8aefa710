package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq" // For pq.Error
)

// Dialect selects the placeholder style of the underlying driver.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

// DialectFromDriver maps a database/sql driver name to its Dialect.
func DialectFromDriver(driver string) (Dialect, error) {
	switch driver {
	case "postgres":
		return DialectPostgres, nil
	case "sqlite":
		return DialectSQLite, nil
	default:
		return 0, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// rebind rewrites $n placeholders into ?n for SQLite. Queries are always
// written in the Postgres form.
func (d Dialect) rebind(query string) string {
	if d != DialectSQLite {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// SQLCollection stores records of one kind as JSON payloads in the records table.
type SQLCollection[T Record] struct {
	db      *sql.DB
	dialect Dialect
	kind    string
}

// NewSQLCollection creates a collection backed by db. The schema must exist.
func NewSQLCollection[T Record](db *sql.DB, dialect Dialect, kind string) *SQLCollection[T] {
	return &SQLCollection[T]{db: db, dialect: dialect, kind: kind}
}

func (r *SQLCollection[T]) List(ctx context.Context) ([]T, error) {
	query := r.dialect.rebind(`SELECT payload FROM records WHERE kind = $1 ORDER BY seq`)
	rows, err := r.db.QueryContext(ctx, query, r.kind)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", ErrDatabaseError, r.kind, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := r.scanPayload(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s: %v", ErrDatabaseError, r.kind, err)
	}
	return out, nil
}

func (r *SQLCollection[T]) Get(ctx context.Context, id string) (T, error) {
	return r.getWith(ctx, r.db, id)
}

func (r *SQLCollection[T]) Count(ctx context.Context) (int, error) {
	var n int
	query := r.dialect.rebind(`SELECT COUNT(*) FROM records WHERE kind = $1`)
	if err := r.db.QueryRowContext(ctx, query, r.kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: counting %s: %v", ErrDatabaseError, r.kind, err)
	}
	return n, nil
}

func (r *SQLCollection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	payload, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encoding %s record: %w", r.kind, err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.getWith(ctx, tx, rec.RecordID()); err == nil {
			return fmt.Errorf("%w: id %s", ErrDuplicateKey, rec.RecordID())
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		var seq int64
		maxQuery := r.dialect.rebind(`SELECT COALESCE(MAX(seq), 0) FROM records WHERE kind = $1`)
		if err := tx.QueryRowContext(ctx, maxQuery, r.kind).Scan(&seq); err != nil {
			return fmt.Errorf("%w: reading sequence for %s: %v", ErrDatabaseError, r.kind, err)
		}

		insert := r.dialect.rebind(`INSERT INTO records (kind, id, seq, payload) VALUES ($1, $2, $3, $4)`)
		if _, err := tx.ExecContext(ctx, insert, r.kind, rec.RecordID(), seq+1, string(payload)); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: id %s", ErrDuplicateKey, rec.RecordID())
			}
			return fmt.Errorf("%w: inserting %s record: %v", ErrDatabaseError, r.kind, err)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

func (r *SQLCollection[T]) Modify(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var updated T
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.getWith(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(&current); err != nil {
			return err
		}
		payload, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("encoding %s record: %w", r.kind, err)
		}
		update := r.dialect.rebind(`UPDATE records SET payload = $1 WHERE kind = $2 AND id = $3`)
		if _, err := tx.ExecContext(ctx, update, string(payload), r.kind, id); err != nil {
			return fmt.Errorf("%w: updating %s record %s: %v", ErrDatabaseError, r.kind, id, err)
		}
		updated = current
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r *SQLCollection[T]) Delete(ctx context.Context, id string) (T, error) {
	var removed T
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.getWith(ctx, tx, id)
		if err != nil {
			return err
		}
		del := r.dialect.rebind(`DELETE FROM records WHERE kind = $1 AND id = $2`)
		if _, err := tx.ExecContext(ctx, del, r.kind, id); err != nil {
			return fmt.Errorf("%w: deleting %s record %s: %v", ErrDatabaseError, r.kind, id, err)
		}
		removed = current
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return removed, nil
}

func (r *SQLCollection[T]) getWith(ctx context.Context, executor SQLExecutor, id string) (T, error) {
	query := r.dialect.rebind(`SELECT payload FROM records WHERE kind = $1 AND id = $2`)
	rec, err := r.scanPayload(executor.QueryRowContext(ctx, query, r.kind, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}

func (r *SQLCollection[T]) scanPayload(row scanner) (T, error) {
	var rec T
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("%w: scanning %s record: %v", ErrDatabaseError, r.kind, err)
	}
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return rec, fmt.Errorf("%w: decoding %s record: %v", ErrDatabaseError, r.kind, err)
	}
	return rec, nil
}

func (r *SQLCollection[T]) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", ErrDatabaseError, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", ErrDatabaseError, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
