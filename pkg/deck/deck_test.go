package deck

import (
	"testing"

	"holdemtable-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Hearts, Code: "2H"}, d.Cards[0])
	assert.Equal(t, Card{Rank: 10, Suit: Hearts, Code: "TH"}, d.Cards[8])
	assert.Equal(t, Card{Rank: Ace, Suit: Spades, Code: "AS"}, d.Cards[51])

	codes := make(map[string]bool)
	for _, card := range d.Cards {
		codes[card.Code] = true
	}
	assert.Equal(t, 52, len(codes))
}

func TestDeck_Shuffle(t *testing.T) {
	d := New()
	d.Shuffle(rng.NewSeeded(1))

	assert.Equal(t, 52, d.CardsLeft())

	// same multiset of cards as an unshuffled deck
	codes := make(map[string]bool)
	for _, card := range d.Cards {
		codes[card.Code] = true
	}
	assert.Equal(t, 52, len(codes))

	// deterministic for a seeded generator
	d2 := New()
	d2.Shuffle(rng.NewSeeded(1))
	assert.Equal(t, d.Cards, d2.Cards)

	d3 := New()
	d3.Shuffle(rng.NewSeeded(2))
	assert.NotEqual(t, d.Cards, d3.Cards)
}

func TestDeck_Deal(t *testing.T) {
	d := New()

	cards, err := d.Deal(2)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(cards))
	assert.Equal(t, "2H", cards[0].Code)
	assert.Equal(t, "3H", cards[1].Code)
	assert.Equal(t, 50, d.CardsLeft())

	assert.True(t, d.CanDeal(50))
	assert.False(t, d.CanDeal(51))

	_, err = d.Deal(51)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Equal(t, 50, d.CardsLeft())

	rest, err := d.Deal(50)
	assert.NoError(t, err)
	assert.Equal(t, 50, len(rest))
	assert.Equal(t, 0, d.CardsLeft())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", newCard(Ace, Spades).String())
	assert.Equal(t, "T♡", newCard(10, Hearts).String())
	assert.Equal(t, "2♣", newCard(2, Clubs).String())
}
