package mux

import (
	"context"
	"net/http"

	"holdemtable-server/pkg/room"
	"holdemtable-server/pkg/table"

	gmux "github.com/gorilla/mux"
)

type playerResponse struct {
	Player room.PlayerView `json:"player"`
}

// findPlayerTable locates the table at which a player is seated.
// Players do not carry a table reference on the wire, so this scans the
// store; table counts are small enough that this is fine.
func (m *Mux) findPlayerTable(ctx context.Context, playerID string) (*table.Table, error) {
	tables, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, tbl := range tables {
		if _, err := tbl.Player(playerID); err == nil {
			return tbl, nil
		}
	}

	return nil, table.ErrPlayerNotFound
}

func (m *Mux) getPlayerUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["uuid"]

		tbl, err := m.findPlayerTable(r.Context(), playerID)
		if err != nil {
			writeError(w, err)
			return
		}

		view, err := room.NewPlayerView(tbl, playerID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, playerResponse{Player: view})
	}
}

func (m *Mux) deletePlayerUUID() http.HandlerFunc {
	return m.playerMutation(func(tbl *table.Table, playerID string) error {
		return tbl.RemovePlayer(playerID)
	})
}

func (m *Mux) postPlayerUUIDFold() http.HandlerFunc {
	return m.playerMutation(func(tbl *table.Table, playerID string) error {
		return tbl.FoldHand(playerID)
	})
}

// playerMutation resolves the player's table, then runs the mutation inside
// that table's locked update cycle. The player is looked up again under the
// lease in case it was removed in the meantime.
func (m *Mux) playerMutation(fn func(*table.Table, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["uuid"]

		located, err := m.findPlayerTable(r.Context(), playerID)
		if err != nil {
			writeError(w, err)
			return
		}

		tbl, err := m.updateTable(r.Context(), located.ID, func(tbl *table.Table) error {
			return fn(tbl, playerID)
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tableResponse{Table: room.NewTableSnapshot(tbl)})
	}
}
