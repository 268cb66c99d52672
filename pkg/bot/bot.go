package bot

import (
	"karma/internal/util"
	"karma/pkg/controller"
	"karma/pkg/deck"
	"karma/pkg/karma"
)

// IntegrationBot always answers with a legal response
// It plays the smallest combo it can and is not meant to play well
type IntegrationBot struct {
	name  string
	board *karma.Board
}

var _ controller.Policy = (*IntegrationBot)(nil)

// NewIntegrationBot returns a bot, an empty name picks a random one
func NewIntegrationBot(name string) *IntegrationBot {
	if name == "" {
		name = util.GetRandomName()
	}

	return &IntegrationBot{name: name}
}

// SetBoard sets the board the bot reads its answers from
func (i *IntegrationBot) SetBoard(board *karma.Board) {
	i.board = board
}

// Name returns the name of the bot
func (i *IntegrationBot) Name() string {
	return i.name
}

// IsReady returns true once the bot has a board
func (i *IntegrationBot) IsReady() bool {
	return i.board != nil
}

// Action plays whenever a legal combo exists
func (i *IntegrationBot) Action() string {
	for _, action := range i.board.LegalActions() {
		if action == karma.ActionPlay {
			return string(karma.ActionPlay)
		}
	}

	return string(karma.ActionPickUp)
}

// CardPlayIndices returns the indices of the smallest legal combo
func (i *IntegrationBot) CardPlayIndices() []int {
	combos := i.board.CurrentLegalCombos().Sorted()
	if len(combos) == 0 {
		return nil
	}

	wanted := combos[0]
	indices := make([]int, 0, wanted.Len())
	for j, card := range i.board.CurrentPlayer().PlayableCards() {
		if wanted[card.Rank] > 0 {
			wanted[card.Rank]--
			indices = append(indices, j)
		}
	}

	return indices
}

// CardGiveawayIndex returns the first card that is not a joker
func (i *IntegrationBot) CardGiveawayIndex() int {
	for j, card := range i.board.CurrentPlayer().PlayableCards() {
		if card.Rank != deck.Joker {
			return j
		}
	}

	return -1
}

// CardGiveawayPlayerIndex prefers a player who still holds cards
func (i *IntegrationBot) CardGiveawayPlayerIndex() int {
	winners := toSet(i.board.PotentialWinnerIndices())
	others := i.otherPlayerIndices()
	for _, j := range others {
		if !winners[j] {
			return j
		}
	}

	return others[0]
}

// JokerTargetIndex makes a player who is about to win pick up the pile
func (i *IntegrationBot) JokerTargetIndex() int {
	for _, j := range i.board.PotentialWinnerIndices() {
		if j != i.board.PlayerIndex() {
			return j
		}
	}

	return i.otherPlayerIndices()[0]
}

// WantsToMulligan never swaps
func (i *IntegrationBot) WantsToMulligan() string {
	return "n"
}

// MulliganHandIndex is never asked for
func (i *IntegrationBot) MulliganHandIndex() int {
	return 0
}

// MulliganFaceUpIndex is never asked for
func (i *IntegrationBot) MulliganFaceUpIndex() int {
	return 0
}

// PreferredStartDirection always goes right
func (i *IntegrationBot) PreferredStartDirection() string {
	return "r"
}

// VoteForWinnerIndex votes for the first player without cards
func (i *IntegrationBot) VoteForWinnerIndex() int {
	winners := i.board.PotentialWinnerIndices()
	if len(winners) == 0 {
		return -1
	}

	return winners[0]
}

func (i *IntegrationBot) otherPlayerIndices() []int {
	others := make([]int, 0, len(i.board.Players())-1)
	for j := range i.board.Players() {
		if j != i.board.PlayerIndex() {
			others = append(others, j)
		}
	}

	return others
}

func toSet(values []int) map[int]bool {
	s := make(map[int]bool, len(values))
	for _, v := range values {
		s[v] = true
	}

	return s
}
