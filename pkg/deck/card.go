package deck

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
type Card struct {
	Rank int    `json:"rank"`
	Suit Suit   `json:"suit"`
	Code string `json:"code"`
}

func newCard(rank int, suit Suit) Card {
	return Card{
		Rank: rank,
		Suit: suit,
		Code: fmt.Sprintf("%s%c", rankCode(rank), suit[0]-'a'+'A'),
	}
}

// rankCode returns the single-character rank used in the short code ("T" for ten)
func rankCode(rank int) string {
	switch rank {
	case 10:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(rank)
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rankCode(c.Rank), suit)
}

// Equal returns true if the cards match on suit and rank
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}
