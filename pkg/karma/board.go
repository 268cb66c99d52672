package karma

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"karma/internal/rng"
	"karma/pkg/controller"
	"karma/pkg/deck"
)

// player count limits
const (
	MinPlayers = 2
	MaxPlayers = 8
)

// HandSize is the number of cards a player draws back up to after playing
const HandSize = 3

// MinimumToFiller is the shortest run that can be padded with fillers
const MinimumToFiller = 3

const burnRunLength = 4

// PlayOrder decides how played ranks compare to the visible top card
type PlayOrder int

// play order constants
const (
	PlayUp PlayOrder = iota
	PlayDown
)

func (p PlayOrder) String() string {
	if p == PlayDown {
		return "down"
	}

	return "up"
}

// TurnOrder is the direction play moves around the table
type TurnOrder int

// turn order constants
const (
	TurnLeft  TurnOrder = -1
	TurnRight TurnOrder = 1
)

func (t TurnOrder) String() string {
	if t == TurnLeft {
		return "left"
	}

	return "right"
}

// EndTurnHook is run when a turn ends
// Returning an error stops any hooks after it
type EndTurnHook func(b *Board) error

// BoardOptions describe the state of a board before the first turn
type BoardOptions struct {
	DrawPile deck.Cards
	BurnPile deck.Cards
	PlayPile deck.Cards

	WhoStarts        int
	PlayOrder        PlayOrder
	TurnOrder        TurnOrder
	CardsAreFlipped  bool
	EffectMultiplier int

	// Rng shuffles hands when the cards are flipped, defaults to rng.Crypto
	Rng rng.Generator
}

// DefaultBoardOptions returns the options for a fresh board
func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		PlayOrder:        PlayUp,
		TurnOrder:        TurnRight,
		EffectMultiplier: 1,
		Rng:              rng.Crypto{},
	}
}

// Board is the state of a game of Karma
type Board struct {
	id     string
	logger logrus.FieldLogger

	players  []*Player
	drawPile *CardPile
	burnPile *CardPile
	playPile *PlayPile

	playerIndex            int
	playerIndexStartedTurn int
	playOrder              PlayOrder
	turnOrder              TurnOrder
	cardsAreFlipped        bool
	effectMultiplier       int
	hasBurnedThisTurn      bool
	turnsPlayed            int
	numberOfJokersInPlay   int
	replayingKing          bool

	currentLegalCombos deck.ComboSet
	comboHistory       []deck.Cards
	endTurnHooks       []EndTurnHook

	rng        rng.Generator
	controller controller.Controller
	prompts    *controller.PromptManager
	printer    Printer
	log        []*LogMessage
}

// NewBoard returns a board for the players
func NewBoard(logger logrus.FieldLogger, players []*Player, opts BoardOptions) (*Board, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, PlayerCountError(len(players))
	}

	if opts.WhoStarts < 0 || opts.WhoStarts >= len(players) {
		return nil, fmt.Errorf("%w: no player at index %d", ErrInvalidSelection, opts.WhoStarts)
	}

	if opts.EffectMultiplier == 0 {
		opts.EffectMultiplier = 1
	}

	if opts.EffectMultiplier < 1 {
		return nil, fmt.Errorf("effect multiplier must be at least 1, got %d", opts.EffectMultiplier)
	}

	if opts.TurnOrder == 0 {
		opts.TurnOrder = TurnRight
	}

	if opts.Rng == nil {
		opts.Rng = rng.Crypto{}
	}

	id := uuid.New().String()
	b := &Board{
		id:                     id,
		logger:                 logger.WithField("game", id),
		players:                players,
		drawPile:               NewCardPile(opts.DrawPile),
		burnPile:               NewCardPile(opts.BurnPile),
		playPile:               NewPlayPile(opts.PlayPile),
		playerIndex:            opts.WhoStarts,
		playerIndexStartedTurn: opts.WhoStarts,
		playOrder:              opts.PlayOrder,
		turnOrder:              opts.TurnOrder,
		cardsAreFlipped:        opts.CardsAreFlipped,
		effectMultiplier:       opts.EffectMultiplier,
		currentLegalCombos:     deck.NewComboSet(),
		comboHistory:           make([]deck.Cards, 0),
		rng:                    opts.Rng,
		prompts:                controller.NewPromptManager(),
		printer:                nopPrinter{},
		log:                    make([]*LogMessage, 0),
	}

	b.numberOfJokersInPlay = opts.DrawPile.Count(deck.Joker) + opts.PlayPile.Count(deck.Joker)
	for _, player := range players {
		b.numberOfJokersInPlay += player.NumberOfJokers()
	}

	return b, nil
}

// ID returns the unique id of the board
func (b *Board) ID() string {
	return b.id
}

// SetController sets who answers the prompts raised by card effects
func (b *Board) SetController(ctrl controller.Controller, prompts *controller.PromptManager) {
	b.controller = ctrl
	if prompts != nil {
		b.prompts = prompts
	}
}

// SetPrinter sets the printer card effects show the board with
func (b *Board) SetPrinter(printer Printer) {
	if printer == nil {
		printer = nopPrinter{}
	}

	b.printer = printer
}

// Players returns the players in seat order
func (b *Board) Players() []*Player {
	players := make([]*Player, len(b.players))
	copy(players, b.players)
	return players
}

// Player returns the player at index i
func (b *Board) Player(i int) *Player {
	return b.players[i]
}

// CurrentPlayer returns the player whose turn it is
func (b *Board) CurrentPlayer() *Player {
	return b.players[b.playerIndex]
}

// PlayerIndex returns the index of the player whose turn it is
func (b *Board) PlayerIndex() int {
	return b.playerIndex
}

// PlayerIndexStartedTurn returns the index of the player who started the current turn
func (b *Board) PlayerIndexStartedTurn() int {
	return b.playerIndexStartedTurn
}

// DrawPile returns the draw pile
func (b *Board) DrawPile() *CardPile {
	return b.drawPile
}

// BurnPile returns the burn pile
func (b *Board) BurnPile() *CardPile {
	return b.burnPile
}

// PlayPile returns the play pile
func (b *Board) PlayPile() *PlayPile {
	return b.playPile
}

// PlayOrder returns how played ranks compare to the visible top card
func (b *Board) PlayOrder() PlayOrder {
	return b.playOrder
}

// TurnOrder returns the direction play moves around the table
func (b *Board) TurnOrder() TurnOrder {
	return b.turnOrder
}

// CardsAreFlipped returns true when every player plays blind
func (b *Board) CardsAreFlipped() bool {
	return b.cardsAreFlipped
}

// EffectMultiplier returns the multiplier built up by threes
func (b *Board) EffectMultiplier() int {
	return b.effectMultiplier
}

// HasBurnedThisTurn returns true if the play pile was burned this turn
func (b *Board) HasBurnedThisTurn() bool {
	return b.hasBurnedThisTurn
}

// TurnsPlayed returns the number of turns that have ended
func (b *Board) TurnsPlayed() int {
	return b.turnsPlayed
}

// NumberOfJokersInPlay returns the number of jokers that have not been burned
func (b *Board) NumberOfJokersInPlay() int {
	return b.numberOfJokersInPlay
}

// CurrentLegalCombos returns the combos the current player may play this turn
func (b *Board) CurrentLegalCombos() deck.ComboSet {
	return b.currentLegalCombos
}

// ComboHistory returns every combo resolved so far, oldest first
func (b *Board) ComboHistory() []deck.Cards {
	history := make([]deck.Cards, len(b.comboHistory))
	copy(history, b.comboHistory)
	return history
}

// Log returns the game log, oldest first
func (b *Board) Log() []*LogMessage {
	log := make([]*LogMessage, len(b.log))
	copy(log, b.log)
	return log
}

func (b *Board) addLog(playerIndex int, cards deck.Cards, format string, a ...interface{}) {
	msg := newLogMessage(playerIndex, cards, format, a...)
	b.log = append(b.log, msg)
	b.logger.WithField("playerIndex", playerIndex).Debug(msg.String())
}

// PotentialWinnerIndices returns the indices of every player without cards
func (b *Board) PotentialWinnerIndices() []int {
	indices := make([]int, 0)
	for i, player := range b.players {
		if !player.HasCards() {
			indices = append(indices, i)
		}
	}

	return indices
}

// RegisterEndTurnHook adds a hook that runs after the hooks already registered
func (b *Board) RegisterEndTurnHook(hook EndTurnHook) {
	b.endTurnHooks = append(b.endTurnHooks, hook)
}

// FlipTurnOrder reverses the direction of play
func (b *Board) FlipTurnOrder() {
	b.turnOrder = -b.turnOrder
}

// SetTurnOrder sets the direction of play
func (b *Board) SetTurnOrder(turnOrder TurnOrder) {
	b.turnOrder = turnOrder
}

// FlipPlayOrder swaps between playing up and playing down
func (b *Board) FlipPlayOrder() {
	if b.playOrder == PlayUp {
		b.playOrder = PlayDown
	} else {
		b.playOrder = PlayUp
	}
}

// ResetPlayOrder goes back to playing up
func (b *Board) ResetPlayOrder() {
	b.playOrder = PlayUp
}

// FlipHands toggles blind play
// Hands are shuffled going into blind play and sorted coming out of it
func (b *Board) FlipHands() {
	b.cardsAreFlipped = !b.cardsAreFlipped
	for _, player := range b.players {
		if b.cardsAreFlipped {
			player.shuffleHand(b.rng)
		} else {
			player.sortHand()
		}
	}
}

// SetEffectMultiplier sets the effect multiplier
func (b *Board) SetEffectMultiplier(multiplier int) {
	if multiplier < 1 {
		panic(fmt.Sprintf("effect multiplier must be at least 1, got %d", multiplier))
	}

	b.effectMultiplier = multiplier
}

// SetPlayerIndex makes it the turn of the player at index i (wrapping around the table)
func (b *Board) SetPlayerIndex(i int) {
	n := len(b.players)
	b.playerIndex = ((i % n) + n) % n
}

// StepPlayerIndex moves the turn n seats in the direction of play
func (b *Board) StepPlayerIndex(n int) {
	b.SetPlayerIndex(b.playerIndex + n*int(b.turnOrder))
}

// Burn moves cards from the play pile to the burn pile
// A jokerCount of zero burns the whole pile and earns the player another turn,
// otherwise only the top jokerCount cards are burned
func (b *Board) Burn(jokerCount int) {
	var burned deck.Cards
	if jokerCount > 0 {
		burned = b.playPile.PopTop(jokerCount)
	} else {
		burned = b.playPile.Clear()
		b.hasBurnedThisTurn = true
	}

	b.burnPile.AddCards(burned)
	b.numberOfJokersInPlay -= burned.Count(deck.Joker)
	b.addLog(b.playerIndex, burned, "burned")
}

// StartTurn prepares the board for the current player's action
func (b *Board) StartTurn() {
	b.playerIndexStartedTurn = b.playerIndex
	b.hasBurnedThisTurn = false
	b.currentLegalCombos = b.LegalCombos(b.CurrentPlayer().PlayableCards())
	b.logger.WithFields(logrus.Fields{
		"playerIndex": b.playerIndex,
		"legalCombos": b.currentLegalCombos.Len(),
	}).Debug("turn started")
}

// EndTurn counts the turn and runs the end of turn hooks in order
func (b *Board) EndTurn() error {
	b.turnsPlayed++
	for _, hook := range b.endTurnHooks {
		if err := hook(b); err != nil {
			return err
		}
	}

	return nil
}

// rotateHands passes every hand n seats in the direction of play
func (b *Board) rotateHands(n int) {
	count := len(b.players)
	n %= count
	if n == 0 {
		return
	}

	hands := make([]deck.Cards, count)
	for i, player := range b.players {
		hands[i] = player.hand
	}

	shift := n * int(b.turnOrder)
	for i, player := range b.players {
		from := (((i - shift) % count) + count) % count
		player.replaceHand(hands[from])
	}
}

func (b *Board) ask(prompt *controller.Prompt, validator controller.Validator) (interface{}, error) {
	if b.controller == nil {
		return nil, fmt.Errorf("no controller to ask %s", prompt.Key)
	}

	responses, err := b.controller.GetResponse([]*controller.Prompt{prompt}, []controller.Validator{validator})
	if err != nil {
		return nil, err
	}

	return responses[0], nil
}
