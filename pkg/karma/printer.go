package karma

// Printer shows the board to the people playing
// It never changes the board
type Printer interface {
	// Print shows the board from the point of view of the player at selectIndex
	Print(selectIndex int)
	// PrintChoosableCards shows the current player's playable cards and legal combos
	PrintChoosableCards()
}

type nopPrinter struct{}

func (nopPrinter) Print(int)            {}
func (nopPrinter) PrintChoosableCards() {}
