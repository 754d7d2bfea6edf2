package deck

import (
	"errors"

	"holdemtable-server/internal/rng"
)

// ErrEndOfDeck is an error when a deal is attempted with fewer cards remaining
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards in canonical order.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, newCard(rank, suit))
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle performs a Fisher-Yates shuffle using the provided generator
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Deal removes and returns the top n cards
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.Cards) {
		return nil, ErrEndOfDeck
	}

	cards := make([]Card, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
