package karma

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"karma/pkg/deck"
)

// LogMessage is an entry in the game log
// PlayerIndex is -1 when the message is not about a single player
type LogMessage struct {
	UUID        string     `json:"uuid"`
	PlayerIndex int        `json:"playerIndex"`
	Cards       deck.Cards `json:"cards"`
	Message     string     `json:"message"`
	Time        time.Time  `json:"time"`
}

func newLogMessage(playerIndex int, cards deck.Cards, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:        uuid.New().String(),
		PlayerIndex: playerIndex,
		Cards:       cards,
		Message:     fmt.Sprintf(format, a...),
		Time:        time.Now(),
	}
}

func (l *LogMessage) String() string {
	prefix := "board"
	if l.PlayerIndex >= 0 {
		prefix = fmt.Sprintf("player %d", l.PlayerIndex)
	}

	if len(l.Cards) > 0 {
		return fmt.Sprintf("%s: %s %s", prefix, l.Message, l.Cards)
	}

	return fmt.Sprintf("%s: %s", prefix, l.Message)
}
