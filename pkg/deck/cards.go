package deck

import (
	"sort"

	"karma/internal/rng"
)

// Cards represents an ordered collection of cards
type Cards []*Card

func (c Cards) Len() int {
	return len(c)
}

func (c Cards) Less(i, j int) bool {
	return c[i].Less(c[j])
}

func (c Cards) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Ranks returns the rank of every card, in order
func (c Cards) Ranks() []Rank {
	ranks := make([]Rank, len(c))
	for i, card := range c {
		ranks[i] = card.Rank
	}

	return ranks
}

// Count returns the number of cards with the given rank
func (c Cards) Count(rank Rank) int {
	count := 0
	for _, card := range c {
		if card.Rank == rank {
			count++
		}
	}

	return count
}

// IsExclusively returns true if there is at least one card and every card has the given rank
func (c Cards) IsExclusively(rank Rank) bool {
	if len(c) == 0 {
		return false
	}

	return c.Count(rank) == len(c)
}

// AddCard inserts the card, keeping the cards sorted
func (c *Cards) AddCard(card *Card) {
	i := sort.Search(len(*c), func(i int) bool {
		return card.Less((*c)[i])
	})

	*c = append(*c, nil)
	copy((*c)[i+1:], (*c)[i:])
	(*c)[i] = card
}

// AddCards inserts every card, keeping the cards sorted
func (c *Cards) AddCards(cards Cards) {
	for _, card := range cards {
		c.AddCard(card)
	}
}

// Append adds the cards to the end without sorting
func (c *Cards) Append(cards ...*Card) {
	*c = append(*c, cards...)
}

// Sort sorts the cards by rank
func (c Cards) Sort() {
	sort.Stable(c)
}

// Shuffle shuffles the cards in place
func (c Cards) Shuffle(gen rng.Generator) {
	for j := len(c) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		c[i], c[j] = c[j], c[i]
	}
}

// Get returns the cards at the specified indices
func (c Cards) Get(indices []int) Cards {
	cards := make(Cards, 0, len(indices))
	for _, i := range indices {
		cards = append(cards, c[i])
	}

	return cards
}

// RemoveIndices removes the cards at the specified indices and returns them in their original order
func (c *Cards) RemoveIndices(indices []int) Cards {
	remove := make(map[int]bool, len(indices))
	for _, i := range indices {
		remove[i] = true
	}

	kept := make(Cards, 0, len(*c))
	removed := make(Cards, 0, len(indices))
	for i, card := range *c {
		if remove[i] {
			removed = append(removed, card)
		} else {
			kept = append(kept, card)
		}
	}

	*c = kept
	return removed
}

// RemoveMultiset removes one card per rank occurrence in m, scanning from the start.
// The second return value is false (and nothing is removed) if the cards cannot satisfy m
func (c *Cards) RemoveMultiset(m Multiset) (Cards, bool) {
	want := m
	indices := make([]int, 0, m.Len())
	for i, card := range *c {
		if want.Count(card.Rank) > 0 {
			want.remove(card.Rank)
			indices = append(indices, i)
		}
	}

	if want.Len() != 0 {
		return nil, false
	}

	return c.RemoveIndices(indices), true
}

// HasCard returns true if the collection contains the specified card
func (c Cards) HasCard(card *Card) bool {
	for _, cc := range c {
		if cc.Equal(card) {
			return true
		}
	}

	return false
}

// FirstCard returns the first card or nil if the cards are empty
func (c Cards) FirstCard() *Card {
	if len(c) == 0 {
		return nil
	}

	return c[0]
}

// LastCard returns the last card or nil if the cards are empty
func (c Cards) LastCard() *Card {
	n := len(c)
	if n == 0 {
		return nil
	}

	return c[n-1]
}

func (c Cards) String() string {
	return CardsToString(c)
}

// Clone returns a shallow clone of the cards
func (c Cards) Clone() Cards {
	c2 := make(Cards, len(c))
	copy(c2, c)

	return c2
}
