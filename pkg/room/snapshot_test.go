package room

import (
	"encoding/json"
	"strings"
	"testing"

	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/table"

	"github.com/stretchr/testify/assert"
)

func TestNewTableSnapshot(t *testing.T) {
	tbl := table.New(10, rng.NewSeeded(1))
	for i := 0; i < 3; i++ {
		_, err := tbl.AddPlayer()
		assert.NoError(t, err)
	}
	assert.NoError(t, tbl.AdvancePhase(rng.NewSeeded(2)))

	snapshot := NewTableSnapshot(tbl)

	assert.Equal(t, tbl.ID, snapshot.TableID)
	assert.NotEmpty(t, snapshot.TableName)
	assert.Equal(t, table.PreFlop, snapshot.GamePhase)
	assert.Equal(t, 3, len(snapshot.Players))
	assert.False(t, snapshot.LastUpdated.IsZero())

	assert.True(t, snapshot.Players[0].IsDealer)
	assert.True(t, snapshot.Players[1].IsSmallBlind)
	assert.True(t, snapshot.Players[2].IsBigBlind)

	for _, p := range snapshot.Players {
		assert.NotEmpty(t, p.PlayerAlias)
		assert.Equal(t, 2, len(p.PocketCards))
	}

	// the deck never leaves the server
	raw, err := json.Marshal(snapshot)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), `"deck"`))
}

func TestNewPlayerView(t *testing.T) {
	tbl := table.New(10, rng.NewSeeded(1))
	p1, err := tbl.AddPlayer()
	assert.NoError(t, err)
	_, err = tbl.AddPlayer()
	assert.NoError(t, err)

	view, err := NewPlayerView(tbl, p1.ID)
	assert.NoError(t, err)
	assert.Equal(t, p1.ID, view.Player.PlayerID)
	assert.Equal(t, tbl.ID, view.TableID)
	assert.Equal(t, table.Waiting, view.GamePhase)
	assert.True(t, view.Player.IsDealer)
	assert.True(t, view.Player.IsSmallBlind)
	assert.False(t, view.Player.IsBigBlind)

	_, err = NewPlayerView(tbl, "missing")
	assert.Equal(t, table.ErrPlayerNotFound, err)
}
