package table

import (
	"testing"

	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func testTable(t *testing.T, numPlayers int) *Table {
	t.Helper()

	tbl := New(DefaultMaxPlayers, rng.NewSeeded(1))
	for i := 0; i < numPlayers; i++ {
		_, err := tbl.AddPlayer()
		assert.NoError(t, err)
	}

	return tbl
}

func cardsInPlay(tbl *Table) int {
	total := tbl.Deck.CardsLeft() + len(tbl.CommunityCards)
	for _, p := range tbl.Players {
		total += len(p.PocketCards)
	}

	return total
}

func TestNew(t *testing.T) {
	tbl := New(0, rng.NewSeeded(1))

	assert.NotEmpty(t, tbl.ID)
	assert.Equal(t, Waiting, tbl.GamePhase)
	assert.Equal(t, DefaultMaxPlayers, tbl.MaxPlayers)
	assert.Equal(t, int64(0), tbl.HandNumber)
	assert.Equal(t, 52, tbl.Deck.CardsLeft())
	assert.Empty(t, tbl.Players)
	assert.Empty(t, tbl.CommunityCards)
}

func TestTable_AdvancePhase_FullCycle(t *testing.T) {
	tbl := testTable(t, 3)
	g := rng.NewSeeded(2)

	phases := []struct {
		phase     GamePhase
		community int
	}{
		{PreFlop, 0},
		{Flop, 3},
		{Turn, 4},
		{River, 5},
		{Waiting, 0},
	}

	assert.Equal(t, Waiting, tbl.GamePhase)
	for _, expected := range phases {
		assert.NoError(t, tbl.AdvancePhase(g))
		assert.Equal(t, expected.phase, tbl.GamePhase)
		assert.Equal(t, expected.community, len(tbl.CommunityCards))
		assert.Equal(t, 52, cardsInPlay(tbl))
	}
}

// Scenario A: three players seated at an empty table
func TestTable_SeatingPositions(t *testing.T) {
	tbl := testTable(t, 3)

	assert.Equal(t, 0, tbl.DealerPosition)
	assert.Equal(t, 1, tbl.SmallBlindPosition)
	assert.Equal(t, 2, tbl.BigBlindPosition)

	assert.NoError(t, tbl.AdvancePhase(rng.NewSeeded(2)))
	assert.Equal(t, PreFlop, tbl.GamePhase)
	for _, p := range tbl.Players {
		assert.Equal(t, 2, len(p.PocketCards))
	}
	assert.Equal(t, 46, tbl.Deck.CardsLeft())
}

// Scenario B: the hand boundary resets cards and advances the button
func TestTable_AdvancePhase_HandBoundary(t *testing.T) {
	tbl := testTable(t, 3)
	g := rng.NewSeeded(2)

	for i := 0; i < 4; i++ {
		assert.NoError(t, tbl.AdvancePhase(g))
	}
	assert.Equal(t, River, tbl.GamePhase)
	assert.Equal(t, 5, len(tbl.CommunityCards))

	assert.NoError(t, tbl.AdvancePhase(g))
	assert.Equal(t, Waiting, tbl.GamePhase)
	assert.Empty(t, tbl.CommunityCards)
	for _, p := range tbl.Players {
		assert.Empty(t, p.PocketCards)
	}
	assert.Equal(t, int64(1), tbl.HandNumber)
	assert.Equal(t, 52, tbl.Deck.CardsLeft())
	assert.Equal(t, 1, tbl.DealerPosition)
	assert.Equal(t, 2, tbl.SmallBlindPosition)
	assert.Equal(t, 0, tbl.BigBlindPosition)
}

// Scenario C: removing the dealer mid-hand defers the removal to the boundary
func TestTable_RemovePlayer_Deferred(t *testing.T) {
	tbl := testTable(t, 2)
	g := rng.NewSeeded(2)

	assert.Equal(t, 0, tbl.DealerPosition)
	assert.Equal(t, 0, tbl.SmallBlindPosition)
	assert.Equal(t, 1, tbl.BigBlindPosition)

	assert.NoError(t, tbl.AdvancePhase(g)) // pre-flop
	removed := tbl.Players[0].ID
	assert.NoError(t, tbl.RemovePlayer(removed))

	// nothing moves until the hand ends
	assert.Equal(t, 2, len(tbl.Players))
	assert.True(t, tbl.Players[0].MarkedForRemoval)
	assert.Equal(t, 0, tbl.DealerPosition)
	assert.Equal(t, 0, tbl.SmallBlindPosition)
	assert.Equal(t, 1, tbl.BigBlindPosition)
	assert.Equal(t, 2, len(tbl.Players[0].PocketCards))

	for _, phase := range []GamePhase{Flop, Turn, River} {
		assert.NoError(t, tbl.AdvancePhase(g))
		assert.Equal(t, phase, tbl.GamePhase)
	}

	assert.NoError(t, tbl.AdvancePhase(g))
	assert.Equal(t, Waiting, tbl.GamePhase)
	assert.Equal(t, 1, len(tbl.Players))
	assert.NotEqual(t, removed, tbl.Players[0].ID)
	assert.Equal(t, 0, tbl.DealerPosition)
	assert.Equal(t, 0, tbl.SmallBlindPosition)
	assert.Equal(t, 0, tbl.BigBlindPosition)
}

// Scenario D: an 11th player cannot be seated
func TestTable_AddPlayer_TableFull(t *testing.T) {
	tbl := testTable(t, 10)

	p, err := tbl.AddPlayer()
	assert.Nil(t, p)
	assert.Equal(t, ErrTableFull, err)
	assert.Equal(t, 10, len(tbl.Players))
}

func TestTable_AddPlayer_MidHand(t *testing.T) {
	tbl := testTable(t, 2)
	g := rng.NewSeeded(2)

	assert.NoError(t, tbl.AdvancePhase(g))
	assert.Equal(t, 48, tbl.Deck.CardsLeft())

	p, err := tbl.AddPlayer()
	assert.NoError(t, err)

	// dealt in immediately, but the current hand's positions are untouched
	assert.Equal(t, 2, len(p.PocketCards))
	assert.Equal(t, 46, tbl.Deck.CardsLeft())
	assert.Equal(t, 52, cardsInPlay(tbl))
	assert.Equal(t, 0, tbl.DealerPosition)
	assert.Equal(t, 0, tbl.SmallBlindPosition)
	assert.Equal(t, 1, tbl.BigBlindPosition)
}

func TestTable_RemovePlayer_Waiting(t *testing.T) {
	tbl := testTable(t, 3)

	removed := tbl.Players[1].ID
	assert.NoError(t, tbl.RemovePlayer(removed))

	assert.Equal(t, 2, len(tbl.Players))
	_, err := tbl.Player(removed)
	assert.Equal(t, ErrPlayerNotFound, err)

	// heads-up rule applies after the shrink
	assert.Equal(t, 0, tbl.DealerPosition)
	assert.Equal(t, 0, tbl.SmallBlindPosition)
	assert.Equal(t, 1, tbl.BigBlindPosition)
}

func TestTable_RemovePlayer_NotFound(t *testing.T) {
	tbl := testTable(t, 2)
	assert.Equal(t, ErrPlayerNotFound, tbl.RemovePlayer("bad-id"))
}

func TestTable_RemovePlayer_MultipleMarked(t *testing.T) {
	tbl := testTable(t, 4)
	g := rng.NewSeeded(2)

	assert.NoError(t, tbl.AdvancePhase(g))
	assert.NoError(t, tbl.RemovePlayer(tbl.Players[1].ID))
	assert.NoError(t, tbl.RemovePlayer(tbl.Players[2].ID))
	assert.Equal(t, 4, len(tbl.Players))

	keptA, keptB := tbl.Players[0].ID, tbl.Players[3].ID

	assert.NoError(t, tbl.ResetHandToWaiting(g))
	assert.Equal(t, 2, len(tbl.Players))
	assert.Equal(t, keptA, tbl.Players[0].ID)
	assert.Equal(t, keptB, tbl.Players[1].ID)

	// the button skips the departed seats and lands on the next survivor
	assert.Equal(t, 1, tbl.DealerPosition)
	assert.Equal(t, 1, tbl.SmallBlindPosition)
	assert.Equal(t, 0, tbl.BigBlindPosition)
}

func TestTable_StartNewHand(t *testing.T) {
	tbl := testTable(t, 3)
	g := rng.NewSeeded(2)

	assert.NoError(t, tbl.AdvancePhase(g))
	assert.NoError(t, tbl.AdvancePhase(g))
	assert.Equal(t, Flop, tbl.GamePhase)

	assert.NoError(t, tbl.StartNewHand(g))
	assert.Equal(t, PreFlop, tbl.GamePhase)
	assert.Equal(t, int64(1), tbl.HandNumber)
	assert.Empty(t, tbl.CommunityCards)
	for _, p := range tbl.Players {
		assert.Equal(t, 2, len(p.PocketCards))
	}
	assert.Equal(t, 46, tbl.Deck.CardsLeft())
	assert.Equal(t, 1, tbl.DealerPosition)
}

func TestTable_ResetHandToWaiting(t *testing.T) {
	tbl := testTable(t, 2)
	g := rng.NewSeeded(2)

	assert.NoError(t, tbl.AdvancePhase(g))
	assert.NoError(t, tbl.FoldHand(tbl.Players[1].ID))
	assert.True(t, tbl.Players[1].Folded)

	assert.NoError(t, tbl.ResetHandToWaiting(g))
	assert.Equal(t, Waiting, tbl.GamePhase)
	assert.Equal(t, int64(1), tbl.HandNumber)
	assert.Equal(t, 52, tbl.Deck.CardsLeft())
	assert.False(t, tbl.Players[1].Folded)
}

func TestTable_FoldHand(t *testing.T) {
	tbl := testTable(t, 2)

	assert.Equal(t, ErrPlayerNotFound, tbl.FoldHand("bad-id"))

	assert.NoError(t, tbl.FoldHand(tbl.Players[0].ID))
	assert.True(t, tbl.Players[0].Folded)
	assert.Equal(t, 2, len(tbl.Players))
}

func TestTable_HeadsUpRule(t *testing.T) {
	tbl := testTable(t, 2)
	g := rng.NewSeeded(2)

	for hand := 0; hand < 4; hand++ {
		assert.Equal(t, tbl.DealerPosition, tbl.SmallBlindPosition)
		assert.Equal(t, (tbl.DealerPosition+1)%2, tbl.BigBlindPosition)

		for i := 0; i < 5; i++ {
			assert.NoError(t, tbl.AdvancePhase(g))
		}
	}
}

func TestTable_DeckExhausted(t *testing.T) {
	tbl := testTable(t, 10)
	g := rng.NewSeeded(2)

	assert.NoError(t, tbl.AdvancePhase(g)) // 20 pocket cards dealt
	assert.Equal(t, 32, tbl.Deck.CardsLeft())

	_, err := tbl.Deck.Deal(33)
	assert.Equal(t, deck.ErrEndOfDeck, err)
}
