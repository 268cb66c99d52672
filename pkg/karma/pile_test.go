package karma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"karma/pkg/deck"
)

func playPileOf(ranks ...int) *PlayPile {
	return NewPlayPile(deck.CardsFromRanks(ranks...))
}

func TestPlayPile_VisibleTopCard(t *testing.T) {
	a := assert.New(t)

	a.Nil(playPileOf().VisibleTopCard())
	a.Nil(playPileOf(4, 4, 4).VisibleTopCard())
	a.Nil(playPileOf(4, 11).VisibleTopCard())
	a.Nil(playPileOf(4, 11, 4, 11, 4, 11).VisibleTopCard())
	a.Nil(playPileOf(4, 4, 4, 11).VisibleTopCard(), "a jack on a four is hidden")
	a.Equal(deck.Jack, playPileOf(11).VisibleTopCard().Rank)
	a.Equal(deck.Jack, playPileOf(11, 4, 4, 4).VisibleTopCard().Rank)

	for _, rank := range []int{2, 3, 5, 6, 7, 8, 9, 10, 12, 13, 14, 15} {
		a.Equal(deck.Rank(rank), playPileOf(rank).VisibleTopCard().Rank)
		a.Equal(deck.Rank(rank), playPileOf(rank, 4, 4, 4, 11, 4).VisibleTopCard().Rank)
	}
}

func TestPlayPile_Visibles(t *testing.T) {
	a := assert.New(t)

	a.Equal([]bool{}, playPileOf().Visibles())
	a.Equal([]bool{false}, playPileOf(4).Visibles())
	a.Equal([]bool{true}, playPileOf(11).Visibles())
	a.Equal([]bool{true}, playPileOf(6).Visibles())
	a.Equal([]bool{false, false, false}, playPileOf(4, 4, 4).Visibles())
	a.Equal([]bool{false, false}, playPileOf(4, 11).Visibles())
	a.Equal([]bool{true, false, false, false}, playPileOf(11, 4, 4, 4).Visibles())

	for _, rank := range []int{2, 3, 5, 7, 8, 9, 10, 12, 13, 14, 15} {
		a.Equal([]bool{false, true, false, false, false, false, false}, playPileOf(4, rank, 4, 4, 4, 11, 4).Visibles())
	}

	p := playPileOf(3)
	for rank := 2; rank <= 15; rank++ {
		p.AddCard(deck.NewCard(deck.Rank(rank), deck.Hearts))
	}
	a.Equal([]bool{true, true, true, false, true, true, true, true, true, true, true, true, true, true, true}, p.Visibles())

	p = playPileOf()
	p.AddCards(deck.CardsFromRanks(3, 4, 3, 4, 11, 2, 6))
	a.Equal([]bool{true, false, true, false, false, true, true}, p.Visibles())

	p = playPileOf(3)
	p.AddCardsWithVisibility(deck.CardsFromRanks(3, 4, 3, 4, 11, 2, 6), []bool{false, true, false, false, false, true, true})
	a.Equal([]bool{true, false, true, false, false, false, true, true}, p.Visibles())

	a.Panics(func() {
		p.AddCardsWithVisibility(deck.CardsFromRanks(3), nil)
	})
}

func TestPlayPile_RemoveFromBottom(t *testing.T) {
	a := assert.New(t)

	p := playPileOf(3, 4, 3, 4, 11, 7, 4, 4, 2, 6)
	a.Equal([]bool{true, false, true, false, false, true, false, false, true, true}, p.Visibles())
	removed := p.RemoveFromBottom(4)
	a.Equal([]int{3, 4, 3, 4}, ranksOf(removed))
	a.Equal([]int{11, 7, 4, 4, 2, 6}, ranksOf(p.Cards()))
	a.Equal([]bool{false, true, false, false, true, true}, p.Visibles())

	p = playPileOf(3, 4)
	removed = p.RemoveFromBottom(3)
	a.Len(removed, 2)
	a.Equal([]bool{}, p.Visibles())
	a.Equal(0, p.Len())
}

func TestPlayPile_PopTop(t *testing.T) {
	a := assert.New(t)

	p := playPileOf(5, 8, 15, 15)
	popped := p.PopTop(2)
	a.Equal([]int{15, 15}, ranksOf(popped))
	a.Equal([]int{5, 8}, ranksOf(p.Cards()))
	a.Equal([]bool{true, true}, p.Visibles())
	a.Equal(deck.Eight, p.Top().Rank)

	popped = p.PopTop(5)
	a.Len(popped, 2)
	a.Nil(p.Top())
}

func TestPlayPile_ContainsMinLengthRun(t *testing.T) {
	a := assert.New(t)

	a.True(playPileOf(5, 5, 5, 5).WillBurn())
	a.True(playPileOf(2, 9, 5, 5, 5, 5).WillBurn())
	a.True(playPileOf(5, 5, 5, 5, 5).ContainsMinLengthRun(5))
	a.False(playPileOf(5, 5, 5, 6, 5).WillBurn())
	a.False(playPileOf(5, 5, 5, 5, 6).WillBurn())
	a.False(playPileOf().WillBurn())
	a.True(playPileOf(7).ContainsMinLengthRun(1))
	a.True(playPileOf(4, 4, 4, 4).WillBurn(), "invisible fours still burn")
}

func TestPlayPile_Clear(t *testing.T) {
	a := assert.New(t)

	p := playPileOf(4, 11, 4, 3, 11)
	a.Equal([]bool{false, false, false, true, true}, p.Visibles())
	cleared := p.Clear()
	a.Len(cleared, 5)
	a.Equal([]bool{}, p.Visibles())
	a.Equal(0, p.Len())
}

func TestCardPile(t *testing.T) {
	a := assert.New(t)

	p := NewCardPile(deck.CardsFromRanks(11, 12, 13, 14))
	a.Equal(4, p.Len())
	a.Equal(deck.Ace, p.Draw().Rank)
	a.Equal(deck.King, p.Draw().Rank)

	p.AddCard(deck.NewCard(deck.Two, deck.Clubs))
	p.AddCards(deck.CardsFromRanks(3, 4))
	a.Equal([]int{11, 12, 2, 3, 4}, ranksOf(p.Cards()))

	a.Equal([]int{11, 12}, ranksOf(p.RemoveFromBottom(2)))
	a.Equal([]int{2, 3, 4}, ranksOf(p.RemoveFromBottom(10)))
	a.Nil(p.Draw())
	a.Equal(0, p.Len())

	p.AddCards(deck.CardsFromRanks(5, 6))
	a.Len(p.Clear(), 2)
	a.Equal(0, p.Len())
}
