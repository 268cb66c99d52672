package karma

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"karma/internal/rng"
	"karma/pkg/deck"
)

func TestRandomStart(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()

	b, err := RandomStart(logger, RandomStartOptions{Players: 4, Jokers: 1, Seed: 42, Rng: rng.NewSeeded(1)})
	a.NoError(err)
	a.Len(b.Players(), 4)
	for i, player := range b.Players() {
		a.Len(player.Hand(), 3, "player %d", i)
		a.Len(player.FaceUp(), 3, "player %d", i)
		a.Len(player.FaceDown(), 3, "player %d", i)
		a.Equal(0, player.FaceDown().Count(deck.Joker), "player %d", i)
		a.Equal(ZoneHand, player.PlayingFrom())
	}

	a.Equal(17, b.DrawPile().Len())
	a.Equal(0, b.PlayPile().Len())
	a.Equal(0, b.BurnPile().Len())
	a.Equal(1, b.NumberOfJokersInPlay())
	a.Equal(jokersOutsideBurnPile(b), b.NumberOfJokersInPlay())
	a.Equal("dealt a new board", hook.LastEntry().Message)
	a.EqualValues(42, hook.LastEntry().Data["seed"])

	again, err := RandomStart(logger, RandomStartOptions{Players: 4, Jokers: 1, Seed: 42})
	a.NoError(err)
	for i := range b.Players() {
		a.Equal(b.Player(i).Hand(), again.Player(i).Hand(), "the seed decides the deal")
	}
}

func TestRandomStart_errors(t *testing.T) {
	a := assert.New(t)
	logger, _ := test.NewNullLogger()

	_, err := RandomStart(logger, RandomStartOptions{Players: 1})
	a.EqualError(err, "expected 2–8 players, got 1")

	_, err = RandomStart(logger, RandomStartOptions{Players: 9})
	a.Equal(PlayerCountError(9), err)

	_, err = RandomStart(logger, RandomStartOptions{Players: 3, Jokers: -1})
	a.Error(err)

	_, err = RandomStart(logger, RandomStartOptions{Players: 6, Seed: 1})
	a.True(errors.Is(err, deck.ErrEndOfDeck))

	b, err := RandomStart(logger, RandomStartOptions{Players: 6, Jokers: 2, Seed: 1})
	a.NoError(err, "jokers make up the shortfall")
	a.Equal(0, b.DrawPile().Len())

	_, err = RandomStart(logger, RandomStartOptions{Players: 2, WhoStarts: 2, Seed: 1})
	a.True(errors.Is(err, ErrInvalidSelection))
}

func TestMatrixStart(t *testing.T) {
	a := assert.New(t)
	b := newTestBoard(t, MatrixStartOptions{
		Players:          [][][]int{{{9, 3}, {4}, {5, 6}}, {nil, nil, {14}}},
		DrawPile:         []int{2, 15},
		PlayPile:         []int{7, 4},
		BurnPile:         []int{10},
		WhoStarts:        1,
		CardsAreFlipped:  true,
		EffectMultiplier: 4,
		PlayOrder:        PlayDown,
		TurnOrder:        TurnLeft,
	})

	a.Equal([]int{3, 9}, ranksOf(b.Player(0).Hand()))
	a.Equal([]int{4}, ranksOf(b.Player(0).FaceDown()))
	a.Equal([]int{5, 6}, ranksOf(b.Player(0).FaceUp()))
	a.Equal(ZoneFaceUp, b.Player(1).PlayingFrom())
	a.Equal(deck.Joker, b.DrawPile().Cards()[1].Rank)
	a.Equal(deck.Seven, b.PlayPile().VisibleTopCard().Rank)
	a.Equal(1, b.BurnPile().Len())
	a.Equal(1, b.PlayerIndex())
	a.True(b.CardsAreFlipped())
	a.Equal(4, b.EffectMultiplier())
	a.Equal(PlayDown, b.PlayOrder())
	a.Equal(TurnLeft, b.TurnOrder())
	a.Equal(1, b.NumberOfJokersInPlay())
}

func TestMatrixStart_errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := MatrixStart(logger, MatrixStartOptions{Players: [][][]int{{{16}}, {}}})
	assert.EqualError(t, err, "invalid rank: 16")

	_, err = MatrixStart(logger, MatrixStartOptions{Players: [][][]int{{}, {}}, PlayPile: []int{1}})
	assert.EqualError(t, err, "invalid rank: 1")

	_, err = MatrixStart(logger, MatrixStartOptions{Players: [][][]int{{{2}, {3}, {4}, {5}}, {}}})
	assert.Error(t, err)

	_, err = MatrixStart(logger, MatrixStartOptions{Players: [][][]int{{}}})
	assert.Equal(t, PlayerCountError(1), err)
}
