package karma

import (
	"fmt"

	"karma/internal/rng"
	"karma/pkg/deck"
)

// Zone is where a player's playable cards come from
type Zone int

// zone constants, in the order they are played
const (
	ZoneNone Zone = iota
	ZoneHand
	ZoneFaceUp
	ZoneFaceDown
)

func (z Zone) String() string {
	switch z {
	case ZoneHand:
		return "hand"
	case ZoneFaceUp:
		return "face-up"
	case ZoneFaceDown:
		return "face-down"
	default:
		return "none"
	}
}

// Player holds a hand and two reserves
// The hand is played first, then the face-up reserve, then the face-down reserve blind
type Player struct {
	hand     deck.Cards
	faceUp   deck.Cards
	faceDown deck.Cards

	// numberOfJokers is kept in step by every mutator
	numberOfJokers int
}

// NewPlayer returns a player holding the cards
func NewPlayer(hand, faceDown, faceUp deck.Cards) *Player {
	p := &Player{
		hand:     hand.Clone(),
		faceUp:   faceUp.Clone(),
		faceDown: faceDown.Clone(),
	}

	p.hand.Sort()
	p.recountJokers()
	return p
}

// Hand returns a copy of the hand
func (p *Player) Hand() deck.Cards {
	return p.hand.Clone()
}

// FaceUp returns a copy of the face-up reserve
func (p *Player) FaceUp() deck.Cards {
	return p.faceUp.Clone()
}

// FaceDown returns a copy of the face-down reserve
func (p *Player) FaceDown() deck.Cards {
	return p.faceDown.Clone()
}

// Len returns the number of cards the player holds in every zone
func (p *Player) Len() int {
	return len(p.hand) + len(p.faceUp) + len(p.faceDown)
}

// HasCards returns true if the player holds any card
func (p *Player) HasCards() bool {
	return p.Len() > 0
}

// PlayingFrom returns the zone the player must play from
func (p *Player) PlayingFrom() Zone {
	switch {
	case len(p.hand) > 0:
		return ZoneHand
	case len(p.faceUp) > 0:
		return ZoneFaceUp
	case len(p.faceDown) > 0:
		return ZoneFaceDown
	default:
		return ZoneNone
	}
}

// PlayableCards returns a copy of the cards in the zone the player must play from
func (p *Player) PlayableCards() deck.Cards {
	if zone := p.playable(); zone != nil {
		return zone.Clone()
	}

	return deck.Cards{}
}

// NumberOfJokers returns how many jokers the player holds
func (p *Player) NumberOfJokers() int {
	return p.numberOfJokers
}

func (p *Player) playable() *deck.Cards {
	switch p.PlayingFrom() {
	case ZoneHand:
		return &p.hand
	case ZoneFaceUp:
		return &p.faceUp
	case ZoneFaceDown:
		return &p.faceDown
	default:
		return nil
	}
}

func (p *Player) recountJokers() {
	p.numberOfJokers = p.hand.Count(deck.Joker) + p.faceUp.Count(deck.Joker) + p.faceDown.Count(deck.Joker)
}

// removeFromPlayable removes the cards at the indices of the playable zone
func (p *Player) removeFromPlayable(indices []int) deck.Cards {
	zone := p.playable()
	if zone == nil {
		return deck.Cards{}
	}

	removed := zone.RemoveIndices(indices)
	p.numberOfJokers -= removed.Count(deck.Joker)
	return removed
}

func (p *Player) receiveCard(card *deck.Card) {
	p.hand.AddCard(card)
	if card.Rank == deck.Joker {
		p.numberOfJokers++
	}
}

func (p *Player) pickup(cards deck.Cards) {
	for _, card := range cards {
		p.receiveCard(card)
	}
}

// drawUpTo draws from the top of the pile until the hand holds n cards
func (p *Player) drawUpTo(pile *CardPile, n int) int {
	drawn := 0
	for len(p.hand) < n && pile.Len() > 0 {
		p.receiveCard(pile.Draw())
		drawn++
	}

	return drawn
}

func (p *Player) swapHandWithFaceUp(handIndex, faceUpIndex int) error {
	if handIndex < 0 || handIndex >= len(p.hand) || faceUpIndex < 0 || faceUpIndex >= len(p.faceUp) {
		return fmt.Errorf("%w: cannot swap hand %d with face-up %d", ErrInvalidSelection, handIndex, faceUpIndex)
	}

	p.hand[handIndex], p.faceUp[faceUpIndex] = p.faceUp[faceUpIndex], p.hand[handIndex]
	p.hand.Sort()
	return nil
}

// replaceHand swaps in a new hand and returns the old one
func (p *Player) replaceHand(hand deck.Cards) deck.Cards {
	old := p.hand
	p.hand = hand
	p.recountJokers()
	return old
}

func (p *Player) shuffleHand(gen rng.Generator) {
	p.hand.Shuffle(gen)
}

func (p *Player) sortHand() {
	p.hand.Sort()
}

func (p *Player) String() string {
	return fmt.Sprintf("hand[%s] face-up[%s] face-down[%d]", p.hand, p.faceUp, len(p.faceDown))
}
