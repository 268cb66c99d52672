package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards          Cards `json:"cards"`
	numberOfJokers int
	seed           int64
	rng            *rand.Rand
}

// New returns a new deck of 52 cards plus the number of jokers.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(numberOfJokers int) *Deck {
	if numberOfJokers < 0 {
		panic("numberOfJokers cannot be < 0")
	}

	d := &Deck{
		numberOfJokers: numberOfJokers,
		seed:           -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) size() int {
	return 52 + d.numberOfJokers
}

func (d *Deck) buildDeck() {
	cards := make(Cards, 0, d.size())
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	for i := 0; i < d.numberOfJokers; i++ {
		cards = append(cards, NewCard(Joker, Suits[i%len(Suits)]))
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != d.size() || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)
	d.Cards.Shuffle(d.rng)
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN draws n cards, or returns ErrEndOfDeck without drawing if there are not enough
func (d *Deck) DrawN(n int) (Cards, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := d.Cards[:n].Clone()
	d.Cards = d.Cards[n:]

	return cards, nil
}

// AddJokers adds jokers to the remaining cards
func (d *Deck) AddJokers(count int) {
	for i := 0; i < count; i++ {
		d.Cards = append(d.Cards, NewCard(Joker, Suits[i%len(Suits)]))
	}
}

// ShuffleRemaining shuffles the cards that have not been drawn yet
func (d *Deck) ShuffleRemaining() {
	if d.rng == nil {
		d.SetSeed(time.Now().UnixNano())
	}

	d.Cards.Shuffle(d.rng)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
