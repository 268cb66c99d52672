package controller

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPromptManager(t *testing.T) {
	a := assert.New(t)
	pm := NewPromptManager()

	keys := []string{
		KeyMulliganYesNo,
		KeyMulliganHandIndex,
		KeyMulliganFaceUpIndex,
		KeyChooseDirection,
		KeySelectAction,
		KeySelectCardsToPlay,
		KeyGiveAway,
		KeyGiveAwaySelectPlayer,
		KeyJokerSelectPlayer,
		KeyVoteForWinner,
	}

	for _, key := range keys {
		prompt, err := pm.Get(key)
		if a.NoError(err, key) {
			a.Equal(key, prompt.Key)
			a.NotEmpty(prompt.Text)
		}
	}

	_, err := pm.Get("missing")
	a.True(errors.Is(err, ErrUnknownPrompt))
	a.Panics(func() {
		pm.MustGet("missing")
	})
}

func TestReadPromptManager(t *testing.T) {
	a := assert.New(t)

	pm, err := ReadPromptManager("custom.yaml", strings.NewReader("give_away: Pick a card\n"))
	a.NoError(err)
	a.Equal("custom.yaml", pm.Source())
	a.Equal("Pick a card", pm.MustGet(KeyGiveAway).Text)

	_, err = ReadPromptManager("dupes.yaml", strings.NewReader("a: one\nb: two\na: three\n"))
	a.EqualError(err, "prompt file dupes.yaml is not formatted properly: duplicate key a")
	a.IsType(PromptFileFormatError{}, err)

	_, err = ReadPromptManager("nested.yaml", strings.NewReader("a:\n  b: c\n"))
	a.IsType(PromptFileFormatError{}, err)

	_, err = ReadPromptManager("list.yaml", strings.NewReader("- a\n- b\n"))
	a.IsType(PromptFileFormatError{}, err)
}

func TestLoadPromptManager(t *testing.T) {
	pm, err := LoadPromptManager("prompts.yaml")
	assert.NoError(t, err)
	assert.Equal(t, NewPromptManager().MustGet(KeyGiveAway), pm.MustGet(KeyGiveAway))

	_, err = LoadPromptManager("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestPrompt_WithSuffix(t *testing.T) {
	p := &Prompt{Key: KeySelectAction, Text: "What do you want to do?"}
	p2 := p.WithSuffix("(%s)", "pickup/play")
	assert.Equal(t, "What do you want to do? (pickup/play)", p2.String())
	assert.Equal(t, KeySelectAction, p2.Key)
	assert.Equal(t, "What do you want to do?", p.Text)
}
