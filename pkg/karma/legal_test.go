package karma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"karma/pkg/deck"
)

func TestBoard_LegalCombos(t *testing.T) {
	tests := []struct {
		name      string
		playPile  []int
		playOrder PlayOrder
		flipped   bool
		cards     []int
		expects   deck.ComboSet
	}{
		{
			name:    "no cards",
			cards:   []int{},
			expects: combos(),
		},
		{
			name:     "blind play allows any single rank",
			flipped:  true,
			playPile: []int{14},
			cards:    []int{3, 3, 6, 11},
			expects:  combos(ms(3), ms(6), ms(11)),
		},
		{
			name:  "empty pile allows runs and padded runs",
			cards: []int{5, 5, 5, 6, 6},
			expects: combos(
				ms(5), ms(5, 5), ms(5, 5, 5),
				ms(5, 5, 5, 6), ms(5, 5, 5, 6, 6),
			),
		},
		{
			name:     "only invisible cards counts as empty",
			playPile: []int{4, 11},
			cards:    []int{3, 6},
			expects:  combos(ms(3)),
		},
		{
			name:     "fillers cannot be played alone on fillers",
			playPile: []int{6, 6, 6},
			cards:    []int{6, 6},
			expects:  combos(),
		},
		{
			name:     "higher or equal ranks play up",
			playPile: []int{9},
			cards:    []int{2, 4, 5, 9, 10, 15},
			expects:  combos(ms(2), ms(4), ms(9), ms(10), ms(15)),
		},
		{
			name:      "lower or equal ranks play down",
			playPile:  []int{9},
			playOrder: PlayDown,
			cards:     []int{5, 9, 10, 13},
			expects:   combos(ms(5), ms(9)),
		},
		{
			name:     "fillers play alone on an ace",
			playPile: []int{14},
			cards:    []int{6, 6, 14},
			expects:  combos(ms(6), ms(6, 6), ms(14)),
		},
		{
			name:     "the visible card under fours is compared",
			playPile: []int{12, 4, 4},
			cards:    []int{8, 12, 13},
			expects:  combos(ms(12), ms(13)),
		},
		{
			name:     "short runs are not padded",
			playPile: []int{2},
			cards:    []int{7, 7, 6},
			expects:  combos(ms(7), ms(7, 7)),
		},
		{
			name:      "jokers ignore the order",
			playPile:  []int{14},
			playOrder: PlayDown,
			cards:     []int{15, 15, 15, 6},
			expects:   combos(ms(15), ms(15, 15), ms(15, 15, 15), ms(15, 15, 15, 6), ms(6)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, MatrixStartOptions{
				Players:         [][][]int{{}, {}},
				PlayPile:        tt.playPile,
				PlayOrder:       tt.playOrder,
				CardsAreFlipped: tt.flipped,
			})

			legal := b.LegalCombos(deck.CardsFromRanks(tt.cards...))
			assert.Equal(t, tt.expects, legal)
			for combo := range legal {
				assert.True(t, combo.IsValidCombo(), combo.String())
			}
		})
	}
}

func TestBoard_LegalCombos_neverPadsShortRuns(t *testing.T) {
	b := newTestBoard(t, MatrixStartOptions{Players: [][][]int{{}, {}}})
	legal := b.LegalCombos(deck.CardsFromRanks(2, 3, 3, 6, 6, 6, 8, 8, 9, 9, 9, 15))
	for combo := range legal {
		if combo.Count(deck.Filler) == 0 {
			continue
		}

		major, _ := combo.MajorRank()
		assert.NotEqual(t, deck.Filler, major, combo.String())
		assert.GreaterOrEqual(t, combo.Len()-combo.Count(deck.Filler), MinimumToFiller, combo.String())
	}
}

func TestBoard_StartTurn_cachesLegalCombos(t *testing.T) {
	a := assert.New(t)
	b := newTestBoard(t, MatrixStartOptions{
		Players:  [][][]int{{{3, 10}}, {{5}}},
		PlayPile: []int{8},
	})

	b.StartTurn()
	a.Equal(combos(ms(10)), b.CurrentLegalCombos())
	a.Equal([]Action{ActionPickUp, ActionPlay}, b.LegalActions())

	b.playPile.AddCard(deck.NewCard(deck.Two, deck.Clubs))
	a.Equal(combos(ms(10)), b.CurrentLegalCombos(), "not recomputed mid turn")
}
