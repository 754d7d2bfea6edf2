package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"holdemtable-server/pkg/table"
)

// Postgres stores table records in a jsonb column, one row per table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a TableStore backed by the provided database
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Create stores a new table record
func (p *Postgres) Create(ctx context.Context, tbl *table.Table) error {
	raw, err := json.Marshal(tbl)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO tables (uuid, state)
VALUES ($1, $2)`
	_, err = p.db.ExecContext(ctx, query, tbl.ID, raw)
	return err
}

// Get returns the table with the given id
func (p *Postgres) Get(ctx context.Context, tableID string) (*table.Table, error) {
	const query = `
SELECT state
FROM tables
WHERE uuid = $1`

	var raw []byte
	if err := p.db.QueryRowContext(ctx, query, tableID).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var tbl table.Table
	if err := json.Unmarshal(raw, &tbl); err != nil {
		return nil, err
	}

	return &tbl, nil
}

// List returns every stored table
func (p *Postgres) List(ctx context.Context) ([]*table.Table, error) {
	const query = `
SELECT state
FROM tables
ORDER BY created`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*table.Table
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}

		var tbl table.Table
		if err := json.Unmarshal(raw, &tbl); err != nil {
			return nil, err
		}

		tables = append(tables, &tbl)
	}

	return tables, rows.Err()
}

// Save replaces the table record in full
func (p *Postgres) Save(ctx context.Context, tbl *table.Table) error {
	raw, err := json.Marshal(tbl)
	if err != nil {
		return err
	}

	const query = `
UPDATE tables
SET state = $2, updated = (NOW() AT TIME ZONE 'UTC')
WHERE uuid = $1`

	result, err := p.db.ExecContext(ctx, query, tbl.ID, raw)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the table record
func (p *Postgres) Delete(ctx context.Context, tableID string) error {
	const query = `
DELETE FROM tables
WHERE uuid = $1`

	result, err := p.db.ExecContext(ctx, query, tableID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
