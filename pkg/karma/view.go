package karma

import (
	"karma/pkg/deck"
)

// PlayerView is the public state of a player
type PlayerView struct {
	Index         int        `json:"index"`
	Hand          deck.Cards `json:"hand"`
	FaceUp        deck.Cards `json:"faceUp"`
	FaceDownCount int        `json:"faceDownCount"`
	PlayingFrom   string     `json:"playingFrom"`
	Jokers        int        `json:"jokers"`
}

// View is a read-only copy of the board for display
type View struct {
	Players          []PlayerView  `json:"players"`
	DrawPileCount    int           `json:"drawPileCount"`
	PlayPile         deck.Cards    `json:"playPile"`
	PlayPileVisibles []bool        `json:"playPileVisibles"`
	VisibleTopCard   *deck.Card    `json:"visibleTopCard"`
	BurnPileCount    int           `json:"burnPileCount"`
	PlayerIndex      int           `json:"playerIndex"`
	PlayOrder        string        `json:"playOrder"`
	TurnOrder        string        `json:"turnOrder"`
	CardsAreFlipped  bool          `json:"cardsAreFlipped"`
	EffectMultiplier int           `json:"effectMultiplier"`
	TurnsPlayed      int           `json:"turnsPlayed"`
	JokersInPlay     int           `json:"jokersInPlay"`
	LegalCombos      []string      `json:"legalCombos"`
	Log              []*LogMessage `json:"-"`
}

// View returns a copy of the board state
func (b *Board) View() *View {
	players := make([]PlayerView, len(b.players))
	for i, player := range b.players {
		players[i] = PlayerView{
			Index:         i,
			Hand:          player.Hand(),
			FaceUp:        player.FaceUp(),
			FaceDownCount: len(player.faceDown),
			PlayingFrom:   player.PlayingFrom().String(),
			Jokers:        player.NumberOfJokers(),
		}
	}

	combos := b.currentLegalCombos.Sorted()
	legalCombos := make([]string, len(combos))
	for i, combo := range combos {
		legalCombos[i] = combo.String()
	}

	return &View{
		Players:          players,
		DrawPileCount:    b.drawPile.Len(),
		PlayPile:         b.playPile.Cards(),
		PlayPileVisibles: b.playPile.Visibles(),
		VisibleTopCard:   b.playPile.VisibleTopCard(),
		BurnPileCount:    b.burnPile.Len(),
		PlayerIndex:      b.playerIndex,
		PlayOrder:        b.playOrder.String(),
		TurnOrder:        b.turnOrder.String(),
		CardsAreFlipped:  b.cardsAreFlipped,
		EffectMultiplier: b.effectMultiplier,
		TurnsPlayed:      b.turnsPlayed,
		JokersInPlay:     b.numberOfJokersInPlay,
		LegalCombos:      legalCombos,
		Log:              b.Log(),
	}
}
