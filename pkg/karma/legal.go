package karma

import (
	"karma/pkg/deck"
)

// LegalCombos returns every multiset of the cards that may be played on the board
//
// In blind play every rank may be played alone. Otherwise a rank may be played
// on the visible top card if it beats it in the current play order, or if there
// is no visible top card. Twos, fours and jokers may always be played. Runs of
// MinimumToFiller or more may be padded with fillers, and fillers may only be
// played alone on an ace.
func (b *Board) LegalCombos(cards deck.Cards) deck.ComboSet {
	combos := deck.NewComboSet()
	if len(cards) == 0 {
		return combos
	}

	counts := deck.MultisetOf(cards)
	if b.cardsAreFlipped {
		for _, rank := range counts.Distinct() {
			combos.Add(deck.Repeat(rank, 1))
		}

		return combos
	}

	top := b.playPile.VisibleTopCard()
	fillers := counts.Count(deck.Filler)
	for _, rank := range counts.Distinct() {
		if rank == deck.Filler || !b.canPlayOn(rank, top) {
			continue
		}

		for k := 1; k <= counts.Count(rank); k++ {
			run := deck.Repeat(rank, k)
			combos.Add(run)
			if k < MinimumToFiller {
				continue
			}

			for f := 1; f <= fillers; f++ {
				combos.Add(run.Union(deck.Repeat(deck.Filler, f)))
			}
		}
	}

	if top != nil && top.Rank == deck.Ace {
		for f := 1; f <= fillers; f++ {
			combos.Add(deck.Repeat(deck.Filler, f))
		}
	}

	return combos
}

func (b *Board) canPlayOn(rank deck.Rank, top *deck.Card) bool {
	if top == nil {
		return true
	}

	switch rank {
	case deck.Two, deck.Four, deck.Joker:
		return true
	}

	if b.playOrder == PlayDown {
		return rank <= top.Rank
	}

	return rank >= top.Rank
}
