package karma

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPlayerCards is returned when the acting player has nothing left to play
var ErrNoPlayerCards = errors.New("player has no cards")

// ErrPileEmpty is returned when a player tries to pick up an empty play pile
var ErrPileEmpty = errors.New("the play pile is empty")

// ErrNoLegalCombos is returned when a player tries to play without a legal combo
var ErrNoLegalCombos = errors.New("player has no legal combos")

// ErrInvalidCombo is returned when the cards cannot form a combo
// A combo is one rank, optionally padded with fillers
var ErrInvalidCombo = errors.New("cards do not form a combo")

// ErrIllegalCombo is returned when a combo cannot be played on the current pile
var ErrIllegalCombo = errors.New("combo cannot be played right now")

// ErrInvalidSelection is returned when a card index is out of range or repeated
var ErrInvalidSelection = errors.New("invalid card selection")

// ErrUnknownAction is returned when a player picks an action that does not exist
var ErrUnknownAction = errors.New("unknown action")

// ErrTooManyRanks is the panic value when an effect is built from more than one non-filler rank
var ErrTooManyRanks = errors.New("too many different ranks for a combo")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", MinPlayers, MaxPlayers, p)
}

// Ranks is the finishing position of each player by index, 0 being the best
type Ranks []int

// Winners returns the indices of every player ranked first
func (r Ranks) Winners() []int {
	winners := make([]int, 0)
	for i, rank := range r {
		if rank == 0 {
			winners = append(winners, i)
		}
	}

	return winners
}

func (r Ranks) String() string {
	s := make([]string, len(r))
	for i, rank := range r {
		s[i] = fmt.Sprintf("%d:%d", i, rank)
	}

	return "[" + strings.Join(s, " ") + "]"
}

// GameWonError ends the game once the winners are known
type GameWonError struct {
	Ranks Ranks
}

func (g *GameWonError) Error() string {
	return fmt.Sprintf("game won, rankings %s", g.Ranks)
}

// TurnLimitExceededError ends the game when it runs too long
// The player with the fewest cards wins
type TurnLimitExceededError struct {
	Ranks     Ranks
	TurnLimit int
}

func (t *TurnLimitExceededError) Error() string {
	return fmt.Sprintf("turn limit of %d reached, rankings %s", t.TurnLimit, t.Ranks)
}
