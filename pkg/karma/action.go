package karma

import (
	"fmt"

	"karma/pkg/deck"
)

// Action is something a player can do on their turn
type Action string

// action constants
const (
	ActionPickUp Action = "pickup"
	ActionPlay   Action = "play"
)

// LegalActions returns the actions the current player may take
// StartTurn must be called first
func (b *Board) LegalActions() []Action {
	actions := make([]Action, 0, 2)
	if b.canPickUp() == nil {
		actions = append(actions, ActionPickUp)
	}

	if b.canPlay() == nil {
		actions = append(actions, ActionPlay)
	}

	return actions
}

func (b *Board) canPickUp() error {
	if !b.CurrentPlayer().HasCards() {
		return ErrNoPlayerCards
	}

	if b.playPile.Len() == 0 {
		return ErrPileEmpty
	}

	return nil
}

func (b *Board) canPlay() error {
	if !b.CurrentPlayer().HasCards() {
		return ErrNoPlayerCards
	}

	if b.currentLegalCombos.Len() == 0 {
		return ErrNoLegalCombos
	}

	return nil
}

// PickUpPlayPile moves the play pile into the current player's hand
func (b *Board) PickUpPlayPile() error {
	if err := b.canPickUp(); err != nil {
		return err
	}

	cards := b.playPile.Clear()
	b.CurrentPlayer().pickup(cards)
	b.effectMultiplier = 1
	b.addLog(b.playerIndex, nil, "picked up %d cards", len(cards))
	return nil
}

// PlayCardsCombo plays the cards at the indices of the current player's playable cards
// The combo must be one of this turn's legal combos, otherwise ErrIllegalCombo is
// returned and nothing changes
func (b *Board) PlayCardsCombo(indices []int) error {
	if err := b.canPlay(); err != nil {
		return err
	}

	player := b.CurrentPlayer()
	playable := player.PlayableCards()
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(playable) || seen[i] {
			return fmt.Errorf("%w: %v", ErrInvalidSelection, indices)
		}

		seen[i] = true
	}

	m := deck.MultisetOf(playable.Get(indices))
	if !b.currentLegalCombos.Contains(m) {
		return fmt.Errorf("%w: %s", ErrIllegalCombo, m)
	}

	zone := player.PlayingFrom()
	cards := player.removeFromPlayable(indices)
	b.addLog(b.playerIndex, cards, "played from %s", zone)
	return b.playCards(cards, true)
}
