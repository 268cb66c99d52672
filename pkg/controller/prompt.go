package controller

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Prompt keys understood by every controller
const (
	KeyMulliganYesNo        = "mulligan_yn"
	KeyMulliganHandIndex    = "mulligan_hand_index"
	KeyMulliganFaceUpIndex  = "mulligan_fuk_index"
	KeyChooseDirection      = "choose_direction"
	KeySelectAction         = "select_action"
	KeySelectCardsToPlay    = "select_cards_to_play"
	KeyGiveAway             = "give_away"
	KeyGiveAwaySelectPlayer = "give_away_select_player"
	KeyJokerSelectPlayer    = "joker_select_player"
	KeyVoteForWinner        = "vote_for_winner"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// Prompt is a question put to a player
// The key identifies the question, the text is only for display
type Prompt struct {
	Key  string
	Text string
}

// WithSuffix returns a copy of the prompt with formatted text appended
func (p *Prompt) WithSuffix(format string, a ...interface{}) *Prompt {
	return &Prompt{
		Key:  p.Key,
		Text: p.Text + " " + fmt.Sprintf(format, a...),
	}
}

func (p *Prompt) String() string {
	return p.Text
}

// PromptManager is a lookup table of prompt texts
type PromptManager struct {
	source  string
	prompts map[string]string
}

// NewPromptManager returns the built-in prompt table
func NewPromptManager() *PromptManager {
	pm, err := parsePrompts("prompts.yaml", defaultPrompts)
	if err != nil {
		panic(err)
	}

	return pm
}

// LoadPromptManager reads a prompt table from a YAML file
func LoadPromptManager(filename string) (*PromptManager, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadPromptManager(filename, file)
}

// ReadPromptManager reads a prompt table from r
// source is only used in error messages
func ReadPromptManager(source string, r io.Reader) (*PromptManager, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return parsePrompts(source, b)
}

func parsePrompts(source string, b []byte) (*PromptManager, error) {
	var items yaml.MapSlice
	if err := yaml.Unmarshal(b, &items); err != nil {
		return nil, PromptFileFormatError{Source: source, Reason: err.Error()}
	}

	prompts := make(map[string]string, len(items))
	for _, item := range items {
		key, ok := item.Key.(string)
		if !ok {
			return nil, PromptFileFormatError{Source: source, Reason: fmt.Sprintf("key %v is not a string", item.Key)}
		}

		text, ok := item.Value.(string)
		if !ok {
			return nil, PromptFileFormatError{Source: source, Reason: fmt.Sprintf("text for %s is not a string", key)}
		}

		if _, found := prompts[key]; found {
			return nil, PromptFileFormatError{Source: source, Reason: fmt.Sprintf("duplicate key %s", key)}
		}

		prompts[key] = text
	}

	return &PromptManager{
		source:  source,
		prompts: prompts,
	}, nil
}

// Source returns where the table was loaded from
func (p *PromptManager) Source() string {
	return p.source
}

// Get returns the prompt for the key
func (p *PromptManager) Get(key string) (*Prompt, error) {
	text, ok := p.prompts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, key)
	}

	return &Prompt{Key: key, Text: text}, nil
}

// MustGet is like Get, but panics if the key is unknown
func (p *PromptManager) MustGet(key string) *Prompt {
	prompt, err := p.Get(key)
	if err != nil {
		panic(err)
	}

	return prompt
}
