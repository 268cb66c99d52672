package controller

import (
	"errors"
	"fmt"
)

// ErrQuit is returned when the player asks to leave the game
var ErrQuit = errors.New("player quit the game")

// ErrPromptMismatch is returned when the number of prompts and validators differ
var ErrPromptMismatch = errors.New("each prompt needs exactly one validator")

// ErrBotNotReady is returned when a bot is asked a question before it can see the board
var ErrBotNotReady = errors.New("bot has no board")

// ErrInvalidBotResponse is returned when a bot answers with a response the validator rejects
var ErrInvalidBotResponse = errors.New("bot gave an invalid response")

// ErrUnknownPrompt is returned when a prompt key is not in the table
var ErrUnknownPrompt = errors.New("unknown prompt")

// PromptFileFormatError is returned when a prompt table cannot be used
type PromptFileFormatError struct {
	Source string
	Reason string
}

func (p PromptFileFormatError) Error() string {
	return fmt.Sprintf("prompt file %s is not formatted properly: %s", p.Source, p.Reason)
}
