package karma

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"karma/pkg/controller"
)

// Result is the outcome of a finished game
type Result struct {
	TurnLimitHit bool
	TurnsPlayed  int
	Ranks        Ranks
}

// Game drives turns on a board until someone wins
type Game struct {
	board      *Board
	controller controller.Controller
	options    Options
	logger     logrus.FieldLogger
	ranks      Ranks
}

// NewGame returns a game played on the board
// Every prompt, including those raised by card effects, is sent to ctrl
func NewGame(logger logrus.FieldLogger, board *Board, ctrl controller.Controller, opts Options) *Game {
	if opts.Printer == nil {
		opts.Printer = nopPrinter{}
	}

	if opts.Prompts == nil {
		opts.Prompts = controller.NewPromptManager()
	}

	if opts.TurnLimit <= 0 {
		opts.TurnLimit = DefaultOptions().TurnLimit
	}

	g := &Game{
		board:      board,
		controller: ctrl,
		options:    opts,
		logger:     logger.WithField("game", board.ID()),
	}

	board.SetController(ctrl, opts.Prompts)
	board.SetPrinter(opts.Printer)
	g.updateRanks()

	board.RegisterEndTurnHook(stepOneTurn)
	board.RegisterEndTurnHook(g.playTurnAgainIfBurned)
	board.RegisterEndTurnHook(g.checkForWinner)

	return g
}

// Board returns the board the game is played on
func (g *Game) Board() *Board {
	return g.board
}

// Ranks returns the rankings as of the last completed turn
func (g *Game) Ranks() Ranks {
	ranks := make(Ranks, len(g.ranks))
	copy(ranks, g.ranks)
	return ranks
}

// Play plays turns until the game is won or the turn limit is hit
func (g *Game) Play() (*Result, error) {
	for {
		err := g.PlayTurn()
		if err == nil {
			continue
		}

		var won *GameWonError
		if errors.As(err, &won) {
			g.logger.WithField("ranks", won.Ranks.String()).Info("game won")
			return &Result{TurnsPlayed: g.board.TurnsPlayed(), Ranks: won.Ranks}, nil
		}

		var limit *TurnLimitExceededError
		if errors.As(err, &limit) {
			g.logger.WithField("ranks", limit.Ranks.String()).Info("turn limit reached")
			return &Result{TurnLimitHit: true, TurnsPlayed: g.board.TurnsPlayed(), Ranks: limit.Ranks}, nil
		}

		return nil, err
	}
}

// PlayTurn plays a single turn for the current player
// A GameWonError or TurnLimitExceededError is returned when the game is over
func (g *Game) PlayTurn() error {
	b := g.board
	g.options.Printer.Print(b.PlayerIndex())
	b.StartTurn()
	g.options.Printer.PrintChoosableCards()

	actions := b.LegalActions()
	if len(actions) == 0 {
		return b.EndTurn()
	}

	action, err := g.chooseAction(actions)
	if err != nil {
		return err
	}

	switch action {
	case ActionPickUp:
		if err := b.PickUpPlayPile(); err != nil {
			return err
		}
	case ActionPlay:
		if err := g.playCards(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	return b.EndTurn()
}

func (g *Game) chooseAction(actions []Action) (Action, error) {
	if len(actions) == 1 {
		return actions[0], nil
	}

	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = string(action)
	}

	prompt := g.options.Prompts.MustGet(controller.KeySelectAction).WithSuffix("(%s)", strings.Join(names, "/"))
	response, err := g.ask(prompt, controller.IsInSet(names...))
	if err != nil {
		return "", err
	}

	return Action(strings.ToLower(response.(string))), nil
}

// playCards asks for cards until the selection is a legal combo
func (g *Game) playCards() error {
	b := g.board
	for {
		playable := b.CurrentPlayer().PlayableCards()
		upper := len(playable) - 1
		prompt := g.options.Prompts.MustGet(controller.KeySelectCardsToPlay).
			WithSuffix("From [0, %d] - pick up to %d", upper, len(playable))

		response, err := g.ask(prompt, controller.IsNumberSelection(0, upper, len(playable)))
		if err != nil {
			return err
		}

		err = b.PlayCardsCombo(response.([]int))
		if errors.Is(err, ErrIllegalCombo) || errors.Is(err, ErrInvalidSelection) {
			g.logger.WithError(err).Debug("selection rejected")
			continue
		}

		return err
	}
}

func (g *Game) ask(prompt *controller.Prompt, validator controller.Validator) (interface{}, error) {
	responses, err := g.controller.GetResponse([]*controller.Prompt{prompt}, []controller.Validator{validator})
	if err != nil {
		return nil, err
	}

	return responses[0], nil
}

// MulliganAll lets each player swap hand cards with face-up cards before the game starts
func (g *Game) MulliganAll() error {
	b := g.board
	start := b.PlayerIndex()
	defer b.SetPlayerIndex(start)

	for i := range b.players {
		b.SetPlayerIndex(i)
		g.options.Printer.Print(i)
		if err := g.mulliganPlayer(i); err != nil {
			return err
		}
	}

	return nil
}

func (g *Game) mulliganPlayer(i int) error {
	player := g.board.Player(i)
	for len(player.hand) > 0 && len(player.faceUp) > 0 {
		answer, err := g.ask(g.options.Prompts.MustGet(controller.KeyMulliganYesNo), controller.IsYesOrNo())
		if err != nil {
			return err
		}

		if answer.(string) != "y" {
			return nil
		}

		swap, err := g.controller.GetResponse(
			[]*controller.Prompt{
				g.options.Prompts.MustGet(controller.KeyMulliganHandIndex),
				g.options.Prompts.MustGet(controller.KeyMulliganFaceUpIndex),
			},
			[]controller.Validator{
				controller.IsWithinRange(0, len(player.hand)-1),
				controller.IsWithinRange(0, len(player.faceUp)-1),
			},
		)
		if err != nil {
			return err
		}

		if err := player.swapHandWithFaceUp(swap[0].(int), swap[1].(int)); err != nil {
			return err
		}

		g.board.addLog(i, nil, "swapped a hand card with a face-up card")
		g.options.Printer.Print(i)
	}

	return nil
}

// ChooseStartDirection asks the starting player which way play goes
func (g *Game) ChooseStartDirection() error {
	g.options.Printer.Print(g.board.PlayerIndex())
	answer, err := g.ask(g.options.Prompts.MustGet(controller.KeyChooseDirection), controller.IsInSet("l", "r"))
	if err != nil {
		return err
	}

	if strings.EqualFold(answer.(string), "l") {
		g.board.SetTurnOrder(TurnLeft)
	} else {
		g.board.SetTurnOrder(TurnRight)
	}

	return nil
}

func stepOneTurn(b *Board) error {
	b.StepPlayerIndex(1)
	return nil
}

// playTurnAgainIfBurned gives the player who burned the pile another turn
func (g *Game) playTurnAgainIfBurned(b *Board) error {
	starter := b.PlayerIndexStartedTurn()
	if !b.HasBurnedThisTurn() || !b.Player(starter).HasCards() {
		return nil
	}

	b.SetPlayerIndex(starter)
	g.logger.WithField("playerIndex", starter).Debug("burned, playing again")
	return g.PlayTurn()
}

func (g *Game) checkForWinner(b *Board) error {
	g.updateRanks()
	winners := b.PotentialWinnerIndices()
	jokers := b.NumberOfJokersInPlay()

	switch {
	case len(winners) > 0 && jokers == 0:
		return &GameWonError{Ranks: g.Ranks()}
	case len(winners) >= 2:
		if err := g.voteForWinners(winners); err != nil {
			return err
		}

		return &GameWonError{Ranks: g.Ranks()}
	}

	if b.TurnsPlayed() >= g.options.TurnLimit {
		return &TurnLimitExceededError{Ranks: g.Ranks(), TurnLimit: g.options.TurnLimit}
	}

	return nil
}

// updateRanks ranks the players by the number of cards they hold, fewest first
func (g *Game) updateRanks() {
	players := g.board.players
	counts := make([]int, 0, len(players))
	seen := make(map[int]bool)
	for _, player := range players {
		if n := player.Len(); !seen[n] {
			seen[n] = true
			counts = append(counts, n)
		}
	}

	sort.Ints(counts)
	rankOf := make(map[int]int, len(counts))
	for rank, n := range counts {
		rankOf[n] = rank
	}

	g.ranks = make(Ranks, len(players))
	for i, player := range players {
		g.ranks[i] = rankOf[player.Len()]
	}
}

// voteForWinners lets each joker holder vote for one of the players without cards,
// with a vote per joker held. Everyone outside the most voted players drops a rank
func (g *Game) voteForWinners(candidates []int) error {
	b := g.board
	isCandidate := make(map[int]bool, len(candidates))
	for _, i := range candidates {
		isCandidate[i] = true
	}

	exclude := make([]int, 0)
	for i := range b.players {
		if !isCandidate[i] {
			exclude = append(exclude, i)
		}
	}

	votes := make(map[int]int)
	for i, player := range b.players {
		jokers := player.NumberOfJokers()
		if jokers == 0 {
			continue
		}

		b.SetPlayerIndex(i)
		prompt := g.options.Prompts.MustGet(controller.KeyVoteForWinner)
		prompt = &controller.Prompt{Key: prompt.Key, Text: fmt.Sprintf("Player %d: %s", i, prompt.Text)}
		vote, err := g.ask(prompt, controller.IsWithinRange(0, len(b.players)-1, exclude...))
		if err != nil {
			return err
		}

		votes[vote.(int)] += jokers
		b.addLog(i, nil, "voted %d times for player %d", jokers, vote.(int))
	}

	if len(votes) == 0 {
		return nil
	}

	most := 0
	for _, count := range votes {
		if count > most {
			most = count
		}
	}

	for i := range g.ranks {
		if votes[i] != most {
			g.ranks[i]++
		}
	}

	return nil
}
