package store

import (
	"context"
	"encoding/json"
	"sync"

	"holdemtable-server/pkg/table"
)

// Memory is an in-memory TableStore used by tests and the no-database dev
// mode. Records are kept serialized so callers never share live pointers
// with the store.
type Memory struct {
	mu     sync.RWMutex
	tables map[string][]byte
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		tables: make(map[string][]byte),
	}
}

// Create stores a new table record
func (m *Memory) Create(_ context.Context, tbl *table.Table) error {
	return m.put(tbl)
}

// Get returns the table with the given id
func (m *Memory) Get(_ context.Context, tableID string) (*table.Table, error) {
	m.mu.RLock()
	raw, ok := m.tables[tableID]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	var tbl table.Table
	if err := json.Unmarshal(raw, &tbl); err != nil {
		return nil, err
	}

	return &tbl, nil
}

// List returns every stored table
func (m *Memory) List(_ context.Context) ([]*table.Table, error) {
	m.mu.RLock()
	raws := make([][]byte, 0, len(m.tables))
	for _, raw := range m.tables {
		raws = append(raws, raw)
	}
	m.mu.RUnlock()

	tables := make([]*table.Table, 0, len(raws))
	for _, raw := range raws {
		var tbl table.Table
		if err := json.Unmarshal(raw, &tbl); err != nil {
			return nil, err
		}

		tables = append(tables, &tbl)
	}

	return tables, nil
}

// Save replaces the table record in full. The existence check and the write
// happen under one lock so a concurrent Delete cannot resurrect the record.
func (m *Memory) Save(_ context.Context, tbl *table.Table) error {
	raw, err := json.Marshal(tbl)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[tbl.ID]; !ok {
		return ErrNotFound
	}

	m.tables[tbl.ID] = raw
	return nil
}

// Delete removes the table record
func (m *Memory) Delete(_ context.Context, tableID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[tableID]; !ok {
		return ErrNotFound
	}

	delete(m.tables, tableID)
	return nil
}

func (m *Memory) put(tbl *table.Table) error {
	raw, err := json.Marshal(tbl)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.tables[tbl.ID] = raw
	m.mu.Unlock()

	return nil
}
