package karma

import (
	"karma/pkg/deck"
)

// CardPile is a stack of cards where the last card is the top
// Used for the draw pile and the burn pile
type CardPile struct {
	cards deck.Cards
}

// NewCardPile returns a pile of the cards, the last card is the top
func NewCardPile(cards deck.Cards) *CardPile {
	return &CardPile{cards: cards.Clone()}
}

// Len returns the number of cards in the pile
func (c *CardPile) Len() int {
	return len(c.cards)
}

// Cards returns a copy of the cards, bottom first
func (c *CardPile) Cards() deck.Cards {
	return c.cards.Clone()
}

// AddCard puts the card on top
func (c *CardPile) AddCard(card *deck.Card) {
	c.cards = append(c.cards, card)
}

// AddCards puts the cards on top in order
func (c *CardPile) AddCards(cards deck.Cards) {
	c.cards = append(c.cards, cards...)
}

// Draw removes the top card, or returns nil if the pile is empty
func (c *CardPile) Draw() *deck.Card {
	n := len(c.cards)
	if n == 0 {
		return nil
	}

	card := c.cards[n-1]
	c.cards = c.cards[:n-1]
	return card
}

// RemoveFromBottom removes up to n cards from the bottom, oldest first
func (c *CardPile) RemoveFromBottom(n int) deck.Cards {
	if n > len(c.cards) {
		n = len(c.cards)
	}

	removed := c.cards[:n].Clone()
	c.cards = c.cards[n:].Clone()
	return removed
}

// Clear empties the pile and returns what it held
func (c *CardPile) Clear() deck.Cards {
	cards := c.cards
	c.cards = deck.Cards{}
	return cards
}

func (c *CardPile) String() string {
	return c.cards.String()
}

// PlayPile is the pile cards are played to
// Each card carries whether it can be seen from above
type PlayPile struct {
	cards   deck.Cards
	visible []bool
}

// NewPlayPile returns a play pile with the cards added in order
func NewPlayPile(cards deck.Cards) *PlayPile {
	p := &PlayPile{}
	p.AddCards(cards)
	return p
}

// Len returns the number of cards in the pile
func (p *PlayPile) Len() int {
	return len(p.cards)
}

// Cards returns a copy of the cards, bottom first
func (p *PlayPile) Cards() deck.Cards {
	return p.cards.Clone()
}

// Visibles returns a copy of the visibility of each card, bottom first
func (p *PlayPile) Visibles() []bool {
	v := make([]bool, len(p.visible))
	copy(v, p.visible)
	return v
}

// Top returns the top card, visible or not
func (p *PlayPile) Top() *deck.Card {
	return p.cards.LastCard()
}

// Get returns the card at index i, counting from the bottom
func (p *PlayPile) Get(i int) *deck.Card {
	return p.cards[i]
}

func (p *PlayPile) isVisible(card *deck.Card) bool {
	switch card.Rank {
	case deck.Four:
		return false
	case deck.Jack:
		top := p.Top()
		return top == nil || top.Rank != deck.Four
	default:
		return true
	}
}

// AddCard puts the card on top
// A four is never visible, and neither is a jack placed directly on a four
func (p *PlayPile) AddCard(card *deck.Card) {
	p.AddCardWithVisibility(card, p.isVisible(card))
}

// AddCardWithVisibility puts the card on top with an explicit visibility
func (p *PlayPile) AddCardWithVisibility(card *deck.Card, visible bool) {
	p.cards = append(p.cards, card)
	p.visible = append(p.visible, visible)
}

// AddCards puts the cards on top in order
func (p *PlayPile) AddCards(cards deck.Cards) {
	for _, card := range cards {
		p.AddCard(card)
	}
}

// AddCardsWithVisibility puts the cards on top with explicit visibilities
func (p *PlayPile) AddCardsWithVisibility(cards deck.Cards, visibles []bool) {
	if len(cards) != len(visibles) {
		panic("each card needs a visibility")
	}

	for i, card := range cards {
		p.AddCardWithVisibility(card, visibles[i])
	}
}

// VisibleTopCard returns the highest visible card, or nil if none can be seen
func (p *PlayPile) VisibleTopCard() *deck.Card {
	for i := len(p.cards) - 1; i >= 0; i-- {
		if p.visible[i] {
			return p.cards[i]
		}
	}

	return nil
}

// ContainsMinLengthRun returns true if the top n or more cards share a rank
func (p *PlayPile) ContainsMinLengthRun(n int) bool {
	top := p.Top()
	if top == nil {
		return n <= 0
	}

	run := 0
	for i := len(p.cards) - 1; i >= 0 && p.cards[i].Rank == top.Rank; i-- {
		run++
	}

	return run >= n
}

// WillBurn returns true if the top of the pile is four of a kind
func (p *PlayPile) WillBurn() bool {
	return p.ContainsMinLengthRun(burnRunLength)
}

// PopTop removes up to n cards from the top, returned bottom first
func (p *PlayPile) PopTop(n int) deck.Cards {
	if n > len(p.cards) {
		n = len(p.cards)
	}

	at := len(p.cards) - n
	removed := p.cards[at:].Clone()
	p.cards = p.cards[:at]
	p.visible = p.visible[:at]
	return removed
}

// RemoveFromBottom removes up to n cards from the bottom, oldest first
// The remaining cards keep their visibility
func (p *PlayPile) RemoveFromBottom(n int) deck.Cards {
	if n > len(p.cards) {
		n = len(p.cards)
	}

	removed := p.cards[:n].Clone()
	p.cards = p.cards[n:].Clone()
	visible := make([]bool, len(p.visible)-n)
	copy(visible, p.visible[n:])
	p.visible = visible
	return removed
}

// Clear empties the pile and returns what it held
func (p *PlayPile) Clear() deck.Cards {
	cards := p.cards
	p.cards = deck.Cards{}
	p.visible = []bool{}
	return cards
}

func (p *PlayPile) String() string {
	return p.cards.String()
}
