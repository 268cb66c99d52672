package karma

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"karma/pkg/controller"
	"karma/pkg/deck"
)

// effectFunc applies the effect of a combo
// repeats is the size of the combo times the effect multiplier
type effectFunc func(b *Board, combo deck.Cards, repeats int) error

var effects map[deck.Rank]effectFunc

func init() {
	effects = map[deck.Rank]effectFunc{
		deck.Two:   effectTwo,
		deck.Three: effectThree,
		deck.Four:  effectNone,
		deck.Five:  effectFive,
		deck.Six:   effectNone,
		deck.Seven: effectSeven,
		deck.Eight: effectEight,
		deck.Nine:  effectNine,
		deck.Ten:   effectTen,
		deck.Jack:  effectJack,
		deck.Queen: effectQueen,
		deck.King:  effectKing,
		deck.Ace:   effectAce,
		deck.Joker: effectJoker,
	}
}

// effectFor returns the rank the combo acts as and its effect
// The combo must already be valid, anything else is a bug
func effectFor(m deck.Multiset) (deck.Rank, effectFunc) {
	rank, ok := m.MajorRank()
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrTooManyRanks, m))
	}

	effect, ok := effects[rank]
	if !ok {
		panic(fmt.Sprintf("no effect for rank %s", rank))
	}

	return rank, effect
}

// playCards resolves a combo
// When addToPile is false the cards are only replayed for their effect
func (b *Board) playCards(cards deck.Cards, addToPile bool) error {
	m := deck.MultisetOf(cards)
	if !m.IsValidCombo() {
		return fmt.Errorf("%w: %s", ErrInvalidCombo, m)
	}

	rank, effect := effectFor(m)
	if addToPile {
		b.playPile.AddCards(cards)
		b.CurrentPlayer().drawUpTo(b.drawPile, HandSize)
	}

	willBurn := b.playPile.WillBurn()
	b.comboHistory = append(b.comboHistory, cards)
	repeats := len(cards) * b.effectMultiplier

	b.logger.WithFields(logrus.Fields{
		"playerIndex": b.playerIndex,
		"combo":       m.String(),
		"repeats":     repeats,
		"addToPile":   addToPile,
	}).Debug("resolving combo")

	if err := effect(b, cards, repeats); err != nil {
		return err
	}

	if !b.keepsMultiplier(rank) {
		b.effectMultiplier = 1
	}

	if willBurn && b.playPile.WillBurn() {
		b.Burn(0)
	}

	return nil
}

// keepsMultiplier returns true if a resolved combo of the rank leaves the multiplier alone
// Threes stack, and so does a jack that replayed a three
func (b *Board) keepsMultiplier(rank deck.Rank) bool {
	switch rank {
	case deck.Three:
		return true
	case deck.Jack:
		last := b.comboHistory[len(b.comboHistory)-1]
		major, _ := deck.MultisetOf(last).MajorRank()
		return major == deck.Three
	default:
		return false
	}
}

func effectNone(*Board, deck.Cards, int) error {
	return nil
}

func effectTwo(b *Board, _ deck.Cards, _ int) error {
	b.ResetPlayOrder()
	return nil
}

func effectThree(b *Board, combo deck.Cards, _ int) error {
	b.SetEffectMultiplier(b.effectMultiplier << uint(len(combo)))
	return nil
}

func effectFive(b *Board, _ deck.Cards, repeats int) error {
	b.rotateHands(repeats)
	return nil
}

func effectSeven(b *Board, _ deck.Cards, _ int) error {
	if b.effectMultiplier%2 == 1 {
		b.FlipPlayOrder()
	}

	return nil
}

func effectEight(b *Board, _ deck.Cards, _ int) error {
	if b.effectMultiplier%2 == 1 {
		b.FlipTurnOrder()
	}

	return nil
}

func effectNine(b *Board, _ deck.Cards, repeats int) error {
	if b.playPile.WillBurn() {
		return nil
	}

	b.StepPlayerIndex(repeats)
	return nil
}

func effectTen(b *Board, _ deck.Cards, _ int) error {
	b.Burn(0)
	return nil
}

// effectJack replays the card beneath the jacks
func effectJack(b *Board, combo deck.Cards, _ int) error {
	beneath := b.playPile.Len() - 1 - len(combo)
	if beneath < 0 {
		return nil
	}

	card := b.playPile.Get(beneath)
	if card.Rank == deck.Jack {
		return nil
	}

	times := len(combo)
	if card.Rank != deck.Three {
		times *= b.effectMultiplier
		b.effectMultiplier = 1
	}

	for i := 0; i < times; i++ {
		if err := b.playCards(deck.Cards{card}, false); err != nil {
			return err
		}
	}

	return nil
}

// effectQueen lets the player give cards away, one at a time
func effectQueen(b *Board, _ deck.Cards, repeats int) error {
	giverIndex := b.playerIndex
	giver := b.players[giverIndex]
	zone := giver.PlayingFrom()
	if zone == ZoneNone || zone == ZoneFaceDown {
		return nil
	}

	for i := 0; i < repeats; i++ {
		b.printer.Print(giverIndex)
		if giver.PlayingFrom() != zone {
			return nil
		}

		playable := giver.PlayableCards()
		if playable.IsExclusively(deck.Joker) {
			return nil
		}

		jokers := make([]int, 0)
		for j, card := range playable {
			if card.Rank == deck.Joker {
				jokers = append(jokers, j)
			}
		}

		cardIndex, err := b.ask(b.prompts.MustGet(controller.KeyGiveAway), controller.IsWithinRange(0, len(playable)-1, jokers...))
		if err != nil {
			return err
		}

		target, err := b.ask(b.prompts.MustGet(controller.KeyGiveAwaySelectPlayer), controller.IsWithinRange(0, len(b.players)-1, giverIndex))
		if err != nil {
			return err
		}

		given := giver.removeFromPlayable([]int{cardIndex.(int)})
		b.players[target.(int)].pickup(given)
		b.addLog(giverIndex, given, "gave a card to player %d", target.(int))

		giver.drawUpTo(b.drawPile, HandSize)
		if !giver.HasCards() {
			return nil
		}
	}

	return nil
}

// effectKing replays cards from the bottom of the burn pile
// A king replayed by another king only lands on the pile, otherwise four
// kings could burn and replay each other forever
func effectKing(b *Board, _ deck.Cards, repeats int) error {
	if b.replayingKing {
		return nil
	}

	if b.playPile.WillBurn() {
		b.Burn(0)
	}

	b.effectMultiplier = 1
	b.replayingKing = true
	defer func() {
		b.replayingKing = false
	}()

	cards := b.burnPile.RemoveFromBottom(repeats)
	for _, card := range cards {
		if card.Rank == deck.Joker {
			b.numberOfJokersInPlay++
		}

		b.addLog(b.playerIndex, deck.Cards{card}, "replayed from the burn pile")
		if err := b.playCards(deck.Cards{card}, true); err != nil {
			return err
		}
	}

	return nil
}

func effectAce(b *Board, _ deck.Cards, repeats int) error {
	b.FlipHands()
	if repeats != 1 {
		b.FlipHands()
	}

	return nil
}

// effectJoker burns the jokers and makes another player pick up the pile
func effectJoker(b *Board, combo deck.Cards, _ int) error {
	b.Burn(combo.Count(deck.Joker))

	target, err := b.ask(b.prompts.MustGet(controller.KeyJokerSelectPlayer), controller.IsWithinRange(0, len(b.players)-1, b.playerIndex))
	if err != nil {
		return err
	}

	cards := b.playPile.Clear()
	b.players[target.(int)].pickup(cards)
	b.addLog(b.playerIndex, nil, "made player %d pick up the pile", target.(int))
	return nil
}
