package room

import (
	"time"

	"holdemtable-server/internal/names"
	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/table"
)

// TableSnapshot is the redacted table state sent to table subscribers and
// returned from the REST endpoints. The deck is never included.
type TableSnapshot struct {
	TableID        string           `json:"tableId"`
	TableName      string           `json:"tableName"`
	GamePhase      table.GamePhase  `json:"gamePhase"`
	CommunityCards []deck.Card      `json:"communityCards"`
	Players        []PlayerSnapshot `json:"players"`
	HandNumber     int64            `json:"handNumber"`
	MaxPlayers     int              `json:"maxPlayers"`
	LastUpdated    time.Time        `json:"lastUpdated"`
}

// PlayerSnapshot is one seat within a TableSnapshot
type PlayerSnapshot struct {
	PlayerID         string      `json:"playerId"`
	PlayerAlias      string      `json:"playerAlias"`
	PocketCards      []deck.Card `json:"pocketCards"`
	Folded           bool        `json:"folded"`
	MarkedForRemoval bool        `json:"markedForRemoval"`
	IsDealer         bool        `json:"isDealer"`
	IsSmallBlind     bool        `json:"isSmallBlind"`
	IsBigBlind       bool        `json:"isBigBlind"`
}

// PlayerView is the player-scoped snapshot: that player's own seat plus the
// table context needed to render it. Other players' cards never appear here.
type PlayerView struct {
	Player     PlayerSnapshot  `json:"player"`
	TableID    string          `json:"tableId"`
	GamePhase  table.GamePhase `json:"gamePhase"`
	HandNumber int64           `json:"handNumber"`
}

// NewTableSnapshot builds the redacted snapshot for a table
func NewTableSnapshot(tbl *table.Table) TableSnapshot {
	name, _ := names.TableName(tbl.ID)

	players := make([]PlayerSnapshot, len(tbl.Players))
	for i, p := range tbl.Players {
		players[i] = newPlayerSnapshot(tbl, i, p)
	}

	return TableSnapshot{
		TableID:        tbl.ID,
		TableName:      name,
		GamePhase:      tbl.GamePhase,
		CommunityCards: tbl.CommunityCards,
		Players:        players,
		HandNumber:     tbl.HandNumber,
		MaxPlayers:     tbl.MaxPlayers,
		LastUpdated:    time.Now().UTC(),
	}
}

// NewPlayerView builds the player-scoped snapshot
func NewPlayerView(tbl *table.Table, playerID string) (PlayerView, error) {
	for i, p := range tbl.Players {
		if p.ID == playerID {
			return PlayerView{
				Player:     newPlayerSnapshot(tbl, i, p),
				TableID:    tbl.ID,
				GamePhase:  tbl.GamePhase,
				HandNumber: tbl.HandNumber,
			}, nil
		}
	}

	return PlayerView{}, table.ErrPlayerNotFound
}

func newPlayerSnapshot(tbl *table.Table, seat int, p *table.Player) PlayerSnapshot {
	alias, _ := names.PlayerAlias(p.ID)

	return PlayerSnapshot{
		PlayerID:         p.ID,
		PlayerAlias:      alias,
		PocketCards:      p.PocketCards,
		Folded:           p.Folded,
		MarkedForRemoval: p.MarkedForRemoval,
		IsDealer:         seat == tbl.DealerPosition,
		IsSmallBlind:     seat == tbl.SmallBlindPosition,
		IsBigBlind:       seat == tbl.BigBlindPosition,
	}
}
