package controller

// Controller answers prompts for a player
// GetResponse blocks until every prompt has an accepted answer, and returns
// one answer per prompt in the type produced by the matching validator
type Controller interface {
	GetResponse(prompts []*Prompt, validators []Validator) ([]interface{}, error)
}

// Table routes every request to the controller seated at the acting player
type Table struct {
	seats []Controller
	turn  func() int
}

// NewTable returns a table that asks turn() which seat should answer
func NewTable(turn func() int, seats ...Controller) *Table {
	return &Table{
		seats: seats,
		turn:  turn,
	}
}

// Seat returns the controller for the player index
func (t *Table) Seat(i int) Controller {
	return t.seats[i]
}

// GetResponse asks the controller of the acting player
func (t *Table) GetResponse(prompts []*Prompt, validators []Validator) ([]interface{}, error) {
	return t.seats[t.turn()].GetResponse(prompts, validators)
}
