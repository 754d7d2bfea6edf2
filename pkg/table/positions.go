package table

// positionEvent identifies which seating change the position recompute is for
type positionEvent int

const (
	// playerSeated is a join while the table is Waiting (seat appended last)
	playerSeated positionEvent = iota
	// playerRemoved is an immediate removal while the table is Waiting
	playerRemoved
	// handEnded is the hand boundary: marked seats leave and the button advances
	handEnded
)

// positions holds the three rotating seat roles
type positions struct {
	dealer     int
	smallBlind int
	bigBlind   int
}

// recomputePositions is the single source of truth for dealer/blind indexes.
//
// players is the seat order before any compaction: for handEnded it still
// contains seats marked for removal, and for playerRemoved it still contains
// the seat at removedIndex. The returned indexes refer to the seat order
// after those seats are gone, as if they had never existed.
func recomputePositions(players []*Player, dealer int, event positionEvent, removedIndex int) positions {
	switch event {
	case playerSeated:
		return seatedPositions(len(players), dealer)

	case playerRemoved:
		n := len(players) - 1
		if n <= 0 {
			return positions{}
		}

		// a removed dealer hands the button to seat 0; otherwise the
		// dealer only shifts down when a seat before it disappears
		switch {
		case dealer == removedIndex:
			dealer = 0
		case dealer > removedIndex:
			dealer--
		}

		if dealer >= n {
			dealer = n - 1
		}

		return blindsFromDealer(n, dealer)

	case handEnded:
		// advance the button one seat among the survivors, skipping any
		// seat that is leaving, then translate to the compacted order
		n := len(players)
		if n == 0 {
			return positions{}
		}

		next := -1
		for k := 1; k <= n; k++ {
			idx := (dealer + k) % n
			if !players[idx].MarkedForRemoval {
				next = idx
				break
			}
		}

		if next == -1 {
			// everyone left
			return positions{}
		}

		compacted := 0
		remaining := 0
		for i, p := range players {
			if p.MarkedForRemoval {
				continue
			}
			if i == next {
				compacted = remaining
			}
			remaining++
		}

		return blindsFromDealer(remaining, compacted)
	}

	panic("unknown position event")
}

// seatedPositions applies the join rules: the dealer keeps its seat and only
// the blinds are reinterpreted against the larger player count
func seatedPositions(n, dealer int) positions {
	switch n {
	case 0:
		return positions{}
	case 1:
		return positions{dealer: 0, smallBlind: 0, bigBlind: 0}
	case 2:
		return blindsFromDealer(2, 0)
	}

	return blindsFromDealer(n, dealer)
}

// blindsFromDealer derives the blinds from a dealer seat, applying the
// single-player and heads-up special cases
func blindsFromDealer(n, dealer int) positions {
	switch n {
	case 0:
		return positions{}
	case 1:
		return positions{dealer: 0, smallBlind: 0, bigBlind: 0}
	case 2:
		// heads-up: dealer posts the small blind
		return positions{dealer: dealer, smallBlind: dealer, bigBlind: (dealer + 1) % 2}
	}

	small := (dealer + 1) % n
	return positions{dealer: dealer, smallBlind: small, bigBlind: (small + 1) % n}
}

func (t *Table) applyPositions(p positions) {
	t.DealerPosition = p.dealer
	t.SmallBlindPosition = p.smallBlind
	t.BigBlindPosition = p.bigBlind
}
