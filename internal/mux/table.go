package mux

import (
	"net/http"

	"holdemtable-server/internal/names"
	"holdemtable-server/pkg/room"
	"holdemtable-server/pkg/store"
	"holdemtable-server/pkg/table"

	gmux "github.com/gorilla/mux"
)

type tableSummary struct {
	TableID     string          `json:"tableId"`
	TableName   string          `json:"tableName"`
	GamePhase   table.GamePhase `json:"gamePhase"`
	PlayerCount int             `json:"playerCount"`
	MaxPlayers  int             `json:"maxPlayers"`
}

type tableResponse struct {
	Table room.TableSnapshot `json:"table"`
}

func (m *Mux) getTables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := m.store.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		summaries := make([]tableSummary, len(tables))
		for i, tbl := range tables {
			name, _ := names.TableName(tbl.ID)
			summaries[i] = tableSummary{
				TableID:     tbl.ID,
				TableName:   name,
				GamePhase:   tbl.GamePhase,
				PlayerCount: len(tbl.Players),
				MaxPlayers:  tbl.MaxPlayers,
			}
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := table.New(m.maxPlayers, m.rand)
		if err := m.store.Create(r.Context(), tbl); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, tableResponse{Table: room.NewTableSnapshot(tbl)})
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := m.store.Get(r.Context(), gmux.Vars(r)["uuid"])
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tableResponse{Table: room.NewTableSnapshot(tbl)})
	}
}

type deleteTableResponse struct {
	Success bool `json:"success"`
}

func (m *Mux) deleteTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID := gmux.Vars(r)["uuid"]

		// the lease keeps the delete from interleaving with an in-flight
		// update cycle on the same table
		release, err := m.locker.Acquire(r.Context(), tableID, m.lockWait)
		if err != nil {
			writeError(w, err)
			return
		}
		defer release()

		err = m.store.Delete(r.Context(), tableID)
		if err != nil && err != store.ErrNotFound {
			writeError(w, err)
			return
		}

		// deleting an absent table is a success; the end state is the same
		m.locker.Forget(tableID)
		m.dropSeatGate(tableID)
		writeJSON(w, http.StatusOK, deleteTableResponse{Success: true})
	}
}

func (m *Mux) postTableUUIDAdvance() http.HandlerFunc {
	return m.tableMutation(func(tbl *table.Table) error {
		return tbl.AdvancePhase(m.rand)
	})
}

func (m *Mux) postTableUUIDNewDeal() http.HandlerFunc {
	return m.tableMutation(func(tbl *table.Table) error {
		return tbl.StartNewHand(m.rand)
	})
}

func (m *Mux) postTableUUIDReset() http.HandlerFunc {
	return m.tableMutation(func(tbl *table.Table) error {
		return tbl.ResetHandToWaiting(m.rand)
	})
}

// tableMutation wraps a lifecycle transition in the locked update cycle and
// responds with the complete post-mutation table
func (m *Mux) tableMutation(fn func(*table.Table) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, err := m.updateTable(r.Context(), gmux.Vars(r)["uuid"], fn)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tableResponse{Table: room.NewTableSnapshot(tbl)})
	}
}

type seatResponse struct {
	PlayerID string             `json:"playerId"`
	Table    room.TableSnapshot `json:"table"`
}

func (m *Mux) postTableUUIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID := gmux.Vars(r)["uuid"]

		release, ok := m.enterSeatGate(tableID)
		if !ok {
			writeError(w, store.ErrBusy)
			return
		}
		defer release()

		var seated *table.Player
		tbl, err := m.updateTable(r.Context(), tableID, func(tbl *table.Table) error {
			p, err := tbl.AddPlayer()
			if err != nil {
				return err
			}

			seated = p
			return nil
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, seatResponse{
			PlayerID: seated.ID,
			Table:    room.NewTableSnapshot(tbl),
		})
	}
}
