// Package table implements the state machine for a shared live hold'em table:
// seating, dealer and blind rotation, phase advancement, and deferred removal
// of players who leave mid-hand.
package table

import (
	"fmt"

	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"

	"github.com/google/uuid"
)

// DefaultMaxPlayers is the seat capacity used when none is configured
const DefaultMaxPlayers = 10

// Table is one poker game instance with seats, shared cards, and a deck.
// Seat order is append-only; all position arithmetic is mod len(Players).
type Table struct {
	ID                 string      `json:"tableId"`
	GamePhase          GamePhase   `json:"gamePhase"`
	CommunityCards     []deck.Card `json:"communityCards"`
	Players            []*Player   `json:"players"`
	Deck               *deck.Deck  `json:"deck"`
	HandNumber         int64       `json:"handNumber"`
	MaxPlayers         int         `json:"maxPlayers"`
	DealerPosition     int         `json:"dealerPosition"`
	SmallBlindPosition int         `json:"smallBlindPosition"`
	BigBlindPosition   int         `json:"bigBlindPosition"`
}

// New creates an empty table in the Waiting phase with a fresh shuffled deck
func New(maxPlayers int, g rng.Generator) *Table {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	d := deck.New()
	d.Shuffle(g)

	return &Table{
		ID:             uuid.New().String(),
		GamePhase:      Waiting,
		CommunityCards: []deck.Card{},
		Players:        []*Player{},
		Deck:           d,
		MaxPlayers:     maxPlayers,
	}
}

// Player returns the seated player with the given id
func (t *Table) Player(playerID string) (*Player, error) {
	if i := t.playerIndex(playerID); i >= 0 {
		return t.Players[i], nil
	}

	return nil, ErrPlayerNotFound
}

func (t *Table) playerIndex(playerID string) int {
	for i, p := range t.Players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

// checkInvariants fails loudly if the table would be persisted in an
// inconsistent state. Cards are conserved across deck, board, and pockets,
// and every position index must land on an actual seat.
func (t *Table) checkInvariants() error {
	total := t.Deck.CardsLeft() + len(t.CommunityCards)
	for _, p := range t.Players {
		total += len(p.PocketCards)
	}

	if total != 52 {
		return fmt.Errorf("card conservation violated: %d cards accounted for", total)
	}

	if want := t.GamePhase.communityCardCount(); len(t.CommunityCards) != want {
		return fmt.Errorf("expected %d community cards in %s, found %d", want, t.GamePhase, len(t.CommunityCards))
	}

	if n := len(t.Players); n > 0 {
		for _, pos := range []int{t.DealerPosition, t.SmallBlindPosition, t.BigBlindPosition} {
			if pos < 0 || pos >= n {
				return fmt.Errorf("position %d out of range for %d players", pos, n)
			}
		}

		// heads-up: the dealer posts the small blind
		if n == 2 && t.DealerPosition != t.SmallBlindPosition {
			return fmt.Errorf("heads-up dealer %d must post the small blind, not %d", t.DealerPosition, t.SmallBlindPosition)
		}
	}

	return nil
}
