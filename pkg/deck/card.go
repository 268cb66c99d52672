package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in dealing order
var Suits = []Suit{Hearts, Clubs, Diamonds, Spades}

// Rank is the value of a card. Joker ranks above every other card
type Rank int

// rank constants
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
	Joker Rank = 15
)

// MinRank and MaxRank bound every valid rank
const (
	MinRank = Two
	MaxRank = Joker
)

// IsValid returns true if the rank is between Two and Joker
func (r Rank) IsValid() bool {
	return r >= MinRank && r <= MaxRank
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case Joker:
		return "Joker"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an individual playing card
// Cards are never mutated once created
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a new card
func NewCard(rank Rank, suit Suit) *Card {
	if !rank.IsValid() {
		panic(fmt.Sprintf("invalid rank: %d", rank))
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

func (c *Card) String() string {
	if c.Rank == Joker {
		return "🃏"
	}

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

	return fmt.Sprintf("%s%s", c.Rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Less orders cards by rank, using the suit only to keep the ordering stable
func (c *Card) Less(card *Card) bool {
	if c.Rank != card.Rank {
		return c.Rank < card.Rank
	}

	return strings.Compare(string(c.Suit), string(card.Suit)) < 0
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-5])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 15 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(Rank(rank), suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) Cards {
	if s == "" {
		return Cards{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Cards, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardsFromRanks returns cards of the given ranks, all using the first suit
// Useful for seeding boards where only the rank matters
func CardsFromRanks(ranks ...int) Cards {
	cards := make(Cards, len(ranks))
	for i, rank := range ranks {
		cards[i] = NewCard(Rank(rank), Suits[0])
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
