package karma

import (
	"karma/pkg/controller"
)

// Options are options for creating a new game
type Options struct {
	// TurnLimit ends the game after this many turns
	TurnLimit int
	Printer   Printer
	Prompts   *controller.PromptManager
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		TurnLimit: 100,
		Printer:   nopPrinter{},
		Prompts:   controller.NewPromptManager(),
	}
}
