package controller

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_GetResponse(t *testing.T) {
	a := assert.New(t)
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("maybe\ny\n9\nfoo\n2\n0 1\n"), out)

	pm := NewPromptManager()
	responses, err := c.GetResponse(
		[]*Prompt{pm.MustGet(KeyMulliganYesNo), pm.MustGet(KeyMulliganHandIndex), pm.MustGet(KeySelectCardsToPlay)},
		[]Validator{IsYesOrNo(), IsWithinRange(0, 2), IsNumberSelection(0, 3, 4)},
	)

	a.NoError(err)
	a.Equal([]interface{}{"y", 2, []int{0, 1}}, responses)
	a.Contains(out.String(), `"maybe" is not a valid answer`)
	a.Contains(out.String(), `"9" is not a valid answer`)
	a.Contains(out.String(), `"foo" is not a valid answer`)
	a.Contains(out.String(), pm.MustGet(KeyMulliganYesNo).Text)
}

func TestConsole_GetResponse_quit(t *testing.T) {
	c := NewConsole(strings.NewReader("QUIT\n"), io.Discard)
	responses, err := c.GetResponse([]*Prompt{{Key: "x", Text: "?"}}, []Validator{IsYesOrNo()})
	assert.Nil(t, responses)
	assert.Equal(t, ErrQuit, err)
}

func TestConsole_GetResponse_eof(t *testing.T) {
	c := NewConsole(strings.NewReader("n"), io.Discard)
	responses, err := c.GetResponse(
		[]*Prompt{{Key: "a", Text: "?"}, {Key: "b", Text: "?"}},
		[]Validator{IsYesOrNo(), IsYesOrNo()},
	)
	assert.Nil(t, responses)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestConsole_GetResponse_mismatch(t *testing.T) {
	c := NewConsole(strings.NewReader(""), io.Discard)
	_, err := c.GetResponse([]*Prompt{{Key: "a"}}, nil)
	assert.Equal(t, ErrPromptMismatch, err)
}
