// Package store persists whole Table records keyed by table id and hands out
// the per-table leases that serialize read-modify-write cycles.
package store

import (
	"context"
	"errors"

	"holdemtable-server/pkg/table"
)

// ErrNotFound is returned when no table exists for the requested id
var ErrNotFound = errors.New("table not found")

// TableStore is the durable home of Table records.
// Save is last-writer-wins: the entire record is replaced, never partially
// updated.
type TableStore interface {
	Create(ctx context.Context, tbl *table.Table) error
	Get(ctx context.Context, tableID string) (*table.Table, error)
	List(ctx context.Context) ([]*table.Table, error)
	Save(ctx context.Context, tbl *table.Table) error
	Delete(ctx context.Context, tableID string) error
}
