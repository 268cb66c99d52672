package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"karma/pkg/deck"
	"karma/pkg/karma"
)

const hiddenCard = "▓"

// Printer writes the board to a terminal
type Printer struct {
	w     io.Writer
	board *karma.Board

	// logged is how many log messages have already been printed
	logged int
}

var _ karma.Printer = (*Printer)(nil)

// New returns a printer for the board
func New(w io.Writer, board *karma.Board) *Printer {
	return &Printer{
		w:     w,
		board: board,
	}
}

// Print shows every player, the piles and the state of the game
// Only the selected player's hand is shown, unless the cards are flipped, then
// every hand but theirs is shown
func (p *Printer) Print(selectIndex int) {
	view := p.board.View()
	p.printLog(view)
	p.row()

	for _, player := range view.Players {
		line := playerLine(player, (player.Index == selectIndex) != view.CardsAreFlipped)
		switch {
		case player.Index == view.PlayerIndex && player.Index == selectIndex:
			line = pterm.Cyan(line)
		case player.Index == selectIndex:
			line = pterm.Green(line)
		case player.Index == view.PlayerIndex:
			line = pterm.Blue(line)
		}

		pterm.Fprintln(p.w, line)
	}

	pterm.Fprintln(p.w, fmt.Sprintf("Draw Pile: %d cards", view.DrawPileCount))
	pterm.Fprintln(p.w, fmt.Sprintf("Play Pile: %s", playPile(view)))
	pterm.Fprintln(p.w, fmt.Sprintf("Burn Pile: %d cards", view.BurnPileCount))
	pterm.Fprintln(p.w, fmt.Sprintf(
		"Game State: (play %s, turn %s, flipped: %t, multiplier: %d, whose turn: %d, turns played: %d, jokers in play: %d)",
		view.PlayOrder, view.TurnOrder, view.CardsAreFlipped, view.EffectMultiplier,
		view.PlayerIndex, view.TurnsPlayed, view.JokersInPlay,
	))
	p.row()
}

// PrintChoosableCards shows the cards the current player can choose from
// Legal combos are only shown when the player can see their cards
func (p *Printer) PrintChoosableCards() {
	view := p.board.View()
	player := view.Players[view.PlayerIndex]

	var cards []string
	visible := true
	switch player.PlayingFrom {
	case karma.ZoneHand.String():
		cards = cardStrings(player.Hand)
		visible = !view.CardsAreFlipped
	case karma.ZoneFaceUp.String():
		cards = cardStrings(player.FaceUp)
	case karma.ZoneFaceDown.String():
		cards = make([]string, player.FaceDownCount)
		visible = false
	}

	if len(cards) == 0 {
		pterm.Fprintln(p.w, pterm.Gray("No cards to choose from"))
		return
	}

	choices := make([]string, len(cards))
	for i, card := range cards {
		if !visible {
			card = hiddenCard
		}

		choices[i] = fmt.Sprintf("%d:%s", i, card)
	}

	pterm.Fprintln(p.w, fmt.Sprintf("Choosable cards (%s): %s", player.PlayingFrom, strings.Join(choices, " ")))
	if visible {
		pterm.Fprintln(p.w, fmt.Sprintf("Legal combos: %s", strings.Join(view.LegalCombos, " ")))
	}
}

func (p *Printer) printLog(view *karma.View) {
	if p.logged > len(view.Log) {
		p.logged = 0
	}

	for _, msg := range view.Log[p.logged:] {
		pterm.Fprintln(p.w, pterm.Gray(msg.String()))
	}

	p.logged = len(view.Log)
}

func (p *Printer) row() {
	pterm.Fprintln(p.w, strings.Repeat("-", 60))
}

func playerLine(player karma.PlayerView, showHand bool) string {
	hand := strings.Repeat(hiddenCard, len(player.Hand))
	if showHand {
		hand = strings.Join(cardStrings(player.Hand), " ")
	}

	return fmt.Sprintf("Player %d: hand[%s] face-up[%s] face-down[%d]",
		player.Index, hand, strings.Join(cardStrings(player.FaceUp), " "), player.FaceDownCount)
}

func playPile(view *karma.View) string {
	cards := make([]string, len(view.PlayPile))
	for i, card := range view.PlayPile {
		cards[i] = card.String()
		if !view.PlayPileVisibles[i] {
			cards[i] = pterm.Gray(cards[i])
		}
	}

	return "[" + strings.Join(cards, " ") + "]"
}

func cardStrings(cards deck.Cards) []string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return s
}
