package table

import (
	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"
)

// AdvancePhase moves the table to the next phase in the cycle
// Waiting → Pre-Flop → Flop → Turn → River → Waiting.
func (t *Table) AdvancePhase(g rng.Generator) error {
	switch t.GamePhase {
	case Waiting:
		if err := t.dealPocketCards(); err != nil {
			return err
		}
		t.GamePhase = PreFlop

	case PreFlop:
		if err := t.dealCommunityCards(3); err != nil {
			return err
		}
		t.GamePhase = Flop

	case Flop:
		if err := t.dealCommunityCards(1); err != nil {
			return err
		}
		t.GamePhase = Turn

	case Turn:
		if err := t.dealCommunityCards(1); err != nil {
			return err
		}
		t.GamePhase = River

	case River:
		t.resetToWaiting(g)
	}

	return t.checkInvariants()
}

// StartNewHand discards the current hand, if any, and immediately deals the
// next one, leaving the table in Pre-Flop
func (t *Table) StartNewHand(g rng.Generator) error {
	t.resetToWaiting(g)

	if err := t.dealPocketCards(); err != nil {
		return err
	}
	t.GamePhase = PreFlop

	return t.checkInvariants()
}

// ResetHandToWaiting abandons the current hand from any phase and returns the
// table to Waiting
func (t *Table) ResetHandToWaiting(g rng.Generator) error {
	t.resetToWaiting(g)
	return t.checkInvariants()
}

// resetToWaiting is the end-of-hand boundary: seats marked for removal leave,
// the deck is rebuilt, all cards are cleared, and the button advances one seat
// among the remaining players.
func (t *Table) resetToWaiting(g rng.Generator) {
	pos := recomputePositions(t.Players, t.DealerPosition, handEnded, -1)

	remaining := make([]*Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p.MarkedForRemoval {
			continue
		}

		p.PocketCards = []deck.Card{}
		p.Folded = false
		remaining = append(remaining, p)
	}
	t.Players = remaining

	d := deck.New()
	d.Shuffle(g)
	t.Deck = d

	t.CommunityCards = []deck.Card{}
	t.HandNumber++
	t.applyPositions(pos)
	t.GamePhase = Waiting
}

func (t *Table) dealPocketCards() error {
	for _, p := range t.Players {
		cards, err := t.Deck.Deal(2)
		if err != nil {
			return err
		}

		p.PocketCards = cards
	}

	return nil
}

func (t *Table) dealCommunityCards(n int) error {
	cards, err := t.Deck.Deal(n)
	if err != nil {
		return err
	}

	t.CommunityCards = append(t.CommunityCards, cards...)
	return nil
}
