package controller

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is a Controller for a person at a terminal
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ Controller = (*Console)(nil)

// NewConsole returns a console reading answers from in and writing prompts to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// GetResponse asks each prompt until the answer is accepted
// Answering "quit" returns ErrQuit
func (c *Console) GetResponse(prompts []*Prompt, validators []Validator) ([]interface{}, error) {
	if len(prompts) != len(validators) {
		return nil, ErrPromptMismatch
	}

	responses := make([]interface{}, len(prompts))
	for i, prompt := range prompts {
		response, err := c.ask(prompt, validators[i])
		if err != nil {
			return nil, err
		}

		responses[i] = response
	}

	return responses, nil
}

func (c *Console) ask(prompt *Prompt, validator Validator) (interface{}, error) {
	for {
		fmt.Fprintf(c.out, "%s ", prompt.Text)

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return nil, err
			}

			return nil, fmt.Errorf("no answer to %s: %w", prompt.Key, io.EOF)
		}

		raw := strings.TrimSpace(c.in.Text())
		if strings.EqualFold(raw, "quit") {
			return nil, ErrQuit
		}

		v, err := validator.Cast(raw)
		if err == nil && validator.Accept(v) {
			return v, nil
		}

		fmt.Fprintf(c.out, "%q is not a valid answer\n", raw)
	}
}
