package karma

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"karma/internal/rng"
	"karma/pkg/deck"
)

// RandomStartOptions configure a freshly dealt board
type RandomStartOptions struct {
	Players   int
	Jokers    int
	WhoStarts int
	// Seed shuffles the deck, 0 picks a seed from the clock
	Seed int64
	Rng  rng.Generator
}

// RandomStart deals a shuffled deck into a new board
// Face-down reserves are dealt before the jokers are shuffled in, so jokers
// can only be dealt face-up, into a hand, or left in the draw pile
func RandomStart(logger logrus.FieldLogger, opts RandomStartOptions) (*Board, error) {
	if opts.Players < MinPlayers || opts.Players > MaxPlayers {
		return nil, PlayerCountError(opts.Players)
	}

	if opts.Jokers < 0 {
		return nil, fmt.Errorf("number of jokers cannot be negative, got %d", opts.Jokers)
	}

	d := deck.New(0)
	d.Shuffle(opts.Seed)

	faceDowns, err := dealThree(d, opts.Players)
	if err != nil {
		return nil, err
	}

	d.AddJokers(opts.Jokers)
	d.ShuffleRemaining()

	faceUps, err := dealThree(d, opts.Players)
	if err != nil {
		return nil, err
	}

	hands, err := dealThree(d, opts.Players)
	if err != nil {
		return nil, err
	}

	players := make([]*Player, opts.Players)
	for i := range players {
		players[i] = NewPlayer(hands[i], faceDowns[i], faceUps[i])
	}

	boardOpts := DefaultBoardOptions()
	boardOpts.DrawPile = d.Cards
	boardOpts.WhoStarts = opts.WhoStarts
	if opts.Rng != nil {
		boardOpts.Rng = opts.Rng
	}

	b, err := NewBoard(logger, players, boardOpts)
	if err != nil {
		return nil, err
	}

	b.logger.WithFields(logrus.Fields{
		"seed":    d.GetSeed(),
		"players": opts.Players,
		"jokers":  opts.Jokers,
	}).Info("dealt a new board")
	return b, nil
}

func dealThree(d *deck.Deck, players int) ([]deck.Cards, error) {
	dealt := make([]deck.Cards, players)
	for i := range dealt {
		cards, err := d.DrawN(3)
		if err != nil {
			return nil, fmt.Errorf("not enough cards to deal %d players: %w", players, err)
		}

		dealt[i] = cards
	}

	return dealt, nil
}

// MatrixStartOptions describe a board by the ranks in every zone and pile
// Players holds [hand, face-down, face-up] ranks for each player, piles are bottom first
type MatrixStartOptions struct {
	Players  [][][]int
	DrawPile []int
	PlayPile []int
	BurnPile []int

	WhoStarts        int
	CardsAreFlipped  bool
	EffectMultiplier int
	PlayOrder        PlayOrder
	TurnOrder        TurnOrder
	Rng              rng.Generator
}

// MatrixStart builds a board from literal ranks
func MatrixStart(logger logrus.FieldLogger, opts MatrixStartOptions) (*Board, error) {
	players := make([]*Player, len(opts.Players))
	for i, zones := range opts.Players {
		if len(zones) > 3 {
			return nil, fmt.Errorf("player %d has %d zones, expected at most 3", i, len(zones))
		}

		var hand, faceDown, faceUp deck.Cards
		for z, ranks := range zones {
			cards, err := cardsFromRanks(ranks)
			if err != nil {
				return nil, err
			}

			switch z {
			case 0:
				hand = cards
			case 1:
				faceDown = cards
			case 2:
				faceUp = cards
			}
		}

		players[i] = NewPlayer(hand, faceDown, faceUp)
	}

	boardOpts := DefaultBoardOptions()
	boardOpts.WhoStarts = opts.WhoStarts
	boardOpts.CardsAreFlipped = opts.CardsAreFlipped
	boardOpts.PlayOrder = opts.PlayOrder
	if opts.EffectMultiplier != 0 {
		boardOpts.EffectMultiplier = opts.EffectMultiplier
	}

	if opts.TurnOrder != 0 {
		boardOpts.TurnOrder = opts.TurnOrder
	}

	if opts.Rng != nil {
		boardOpts.Rng = opts.Rng
	}

	var err error
	if boardOpts.DrawPile, err = cardsFromRanks(opts.DrawPile); err != nil {
		return nil, err
	}

	if boardOpts.PlayPile, err = cardsFromRanks(opts.PlayPile); err != nil {
		return nil, err
	}

	if boardOpts.BurnPile, err = cardsFromRanks(opts.BurnPile); err != nil {
		return nil, err
	}

	return NewBoard(logger, players, boardOpts)
}

func cardsFromRanks(ranks []int) (deck.Cards, error) {
	for _, rank := range ranks {
		if !deck.Rank(rank).IsValid() {
			return nil, fmt.Errorf("invalid rank: %d", rank)
		}
	}

	return deck.CardsFromRanks(ranks...), nil
}
