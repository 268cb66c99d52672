package karma

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"karma/internal/rng"
	"karma/pkg/controller"
	"karma/pkg/deck"
)

func newTestBoard(t *testing.T, opts MatrixStartOptions) *Board {
	t.Helper()

	if opts.Rng == nil {
		opts.Rng = rng.NewSeeded(1)
	}

	logger, _ := test.NewNullLogger()
	b, err := MatrixStart(logger, opts)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return b
}

// scriptedController answers prompts from a fixed list
type scriptedController struct {
	answers []interface{}
	keys    []string
}

func newScriptedController(answers ...interface{}) *scriptedController {
	return &scriptedController{answers: answers}
}

func (s *scriptedController) GetResponse(prompts []*controller.Prompt, validators []controller.Validator) ([]interface{}, error) {
	responses := make([]interface{}, len(prompts))
	for i, prompt := range prompts {
		if len(s.answers) == 0 {
			return nil, fmt.Errorf("no answer left for %s", prompt.Key)
		}

		answer := s.answers[0]
		s.answers = s.answers[1:]
		if !validators[i].Accept(answer) {
			return nil, fmt.Errorf("%v rejected for %s", answer, prompt.Key)
		}

		s.keys = append(s.keys, prompt.Key)
		responses[i] = answer
	}

	return responses, nil
}

func ranksOf(cards deck.Cards) []int {
	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = int(card.Rank)
	}

	return ranks
}

func combos(multisets ...deck.Multiset) deck.ComboSet {
	return deck.NewComboSet(multisets...)
}

func ms(ranks ...deck.Rank) deck.Multiset {
	return deck.NewMultiset(ranks...)
}

// playFromHand starts the turn and plays the hand cards at the indices
func playFromHand(t *testing.T, b *Board, indices ...int) {
	t.Helper()
	b.StartTurn()
	if !assert.NoError(t, b.PlayCardsCombo(indices)) {
		t.FailNow()
	}
}

// jokersOutsideBurnPile counts every joker that has not been burned
func jokersOutsideBurnPile(b *Board) int {
	count := b.drawPile.cards.Count(deck.Joker) + b.playPile.cards.Count(deck.Joker)
	for _, player := range b.players {
		count += player.hand.Count(deck.Joker) + player.faceUp.Count(deck.Joker) + player.faceDown.Count(deck.Joker)
	}

	return count
}
