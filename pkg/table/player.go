package table

import (
	"holdemtable-server/pkg/deck"

	"github.com/google/uuid"
)

// Player is a seated participant at a table.
// A player belongs to exactly one table for its lifetime.
type Player struct {
	ID          string      `json:"playerId"`
	PocketCards []deck.Card `json:"pocketCards"`
	Folded      bool        `json:"folded"`

	// MarkedForRemoval is set when a player leaves mid-hand. The seat is
	// kept until the hand ends so in-progress blind assignments stay valid.
	MarkedForRemoval bool `json:"markedForRemoval"`
}

func newPlayer() *Player {
	return &Player{
		ID:          uuid.New().String(),
		PocketCards: []deck.Card{},
	}
}
