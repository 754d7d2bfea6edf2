package mux

import (
	"context"
	"net/http"
	"sync"
	"time"

	"holdemtable-server/internal/config"
	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/room"
	"holdemtable-server/pkg/store"
	"holdemtable-server/pkg/table"

	gmux "github.com/gorilla/mux"
)

const uuidPattern = `(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}`

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   store.TableStore
	locker  *store.Locker
	floor   *room.Floor
	rand    rng.Generator

	maxPlayers int
	lockWait   time.Duration

	// seatGates bounds concurrent seat requests per table so a client
	// double-tap cannot pile up joins
	seatGates      map[string]chan struct{}
	seatGatesMu    sync.Mutex
	seatQueueDepth int
}

// NewMux returns a new HTTP mux
func NewMux(version string, ts store.TableStore, floor *room.Floor) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:         gmux.NewRouter(),
		version:        version,
		store:          ts,
		locker:         store.NewLocker(),
		floor:          floor,
		rand:           rng.Crypto{},
		maxPlayers:     cfg.MaxPlayers,
		lockWait:       time.Duration(cfg.LockWaitMillis) * time.Millisecond,
		seatGates:      make(map[string]chan struct{}),
		seatQueueDepth: cfg.SeatQueueDepth,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTables())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:" + uuidPattern + "}").Subrouter()
	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
	tr.Methods(http.MethodPost).Path("/advance").Handler(this.postTableUUIDAdvance())
	tr.Methods(http.MethodPost).Path("/newdeal").Handler(this.postTableUUIDNewDeal())
	tr.Methods(http.MethodPost).Path("/reset").Handler(this.postTableUUIDReset())
	tr.Methods(http.MethodPost).Path("/seat").Handler(this.postTableUUIDSeat())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	pr := r.PathPrefix("/player/{uuid:" + uuidPattern + "}").Subrouter()
	pr.Methods(http.MethodGet).Path("").Handler(this.getPlayerUUID())
	pr.Methods(http.MethodDelete).Path("").Handler(this.deletePlayerUUID())
	pr.Methods(http.MethodPost).Path("/fold").Handler(this.postPlayerUUIDFold())
	pr.Methods(http.MethodGet).Path("/ws").Handler(this.getPlayerUUIDWS())

	return this
}

// updateTable is the single mutation path: it acquires the table's lease,
// re-reads the record, applies fn, persists the whole table, and fans the
// result out. The lease covers the entire span so concurrent cycles on the
// same table cannot interleave.
func (m *Mux) updateTable(ctx context.Context, tableID string, fn func(*table.Table) error) (*table.Table, error) {
	release, err := m.locker.Acquire(ctx, tableID, m.lockWait)
	if err != nil {
		return nil, err
	}
	defer release()

	tbl, err := m.store.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if err := fn(tbl); err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, tbl); err != nil {
		return nil, err
	}

	m.publish(tbl)
	return tbl, nil
}

// publish is best-effort: the floor enqueues without blocking the mutation
func (m *Mux) publish(tbl *table.Table) {
	m.floor.PublishTable(tbl.ID, room.NewTableSnapshot(tbl))
	for _, p := range tbl.Players {
		view, err := room.NewPlayerView(tbl, p.ID)
		if err != nil {
			continue
		}

		m.floor.PublishPlayer(p.ID, view)
	}
}

// enterSeatGate reserves a seat-request slot for the table; the release
// function must be called when the request finishes
func (m *Mux) enterSeatGate(tableID string) (func(), bool) {
	m.seatGatesMu.Lock()
	gate, ok := m.seatGates[tableID]
	if !ok {
		gate = make(chan struct{}, m.seatQueueDepth)
		m.seatGates[tableID] = gate
	}
	m.seatGatesMu.Unlock()

	select {
	case gate <- struct{}{}:
		return func() { <-gate }, true
	default:
		return nil, false
	}
}

// dropSeatGate releases the gate entry for a deleted table
func (m *Mux) dropSeatGate(tableID string) {
	m.seatGatesMu.Lock()
	delete(m.seatGates, tableID)
	m.seatGatesMu.Unlock()
}
