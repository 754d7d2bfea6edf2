package table

// AddPlayer seats a new player in the last position.
// A player joining mid-hand is dealt in from the live deck right away; the
// cards only become meaningful on the next hand, but that is the historical
// behavior clients expect.
func (t *Table) AddPlayer() (*Player, error) {
	if len(t.Players) >= t.MaxPlayers {
		return nil, ErrTableFull
	}

	p := newPlayer()

	if t.GamePhase != Waiting {
		cards, err := t.Deck.Deal(2)
		if err != nil {
			return nil, err
		}
		p.PocketCards = cards
	}

	t.Players = append(t.Players, p)

	// a mid-hand join never disturbs the current hand's blinds
	if t.GamePhase == Waiting {
		t.applyPositions(recomputePositions(t.Players, t.DealerPosition, playerSeated, -1))
	}

	return p, t.checkInvariants()
}

// RemovePlayer unseats a player. While a hand is in progress the seat is only
// marked; the actual removal happens at the next hand boundary.
func (t *Table) RemovePlayer(playerID string) error {
	idx := t.playerIndex(playerID)
	if idx < 0 {
		return ErrPlayerNotFound
	}

	if t.GamePhase != Waiting {
		t.Players[idx].MarkedForRemoval = true
		return nil
	}

	pos := recomputePositions(t.Players, t.DealerPosition, playerRemoved, idx)
	t.Players = append(t.Players[:idx], t.Players[idx+1:]...)
	t.applyPositions(pos)

	return t.checkInvariants()
}

// FoldHand sets the display-only folded flag for the rest of the hand
func (t *Table) FoldHand(playerID string) error {
	p, err := t.Player(playerID)
	if err != nil {
		return err
	}

	p.Folded = true
	return nil
}
