// Package prompt reads line answers from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/astro-impact/internal/browser"
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ browser.Prompter = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the next line without surrounding whitespace. A
// final line without a newline is still returned; io.EOF follows once input is empty.
func (p *Prompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Confirm keeps asking until the answer is y or n.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			_, _ = fmt.Fprintf(p.out, "Invalid input: '%s'. Try 'y' or 'n'.\n", answer)
		}
	}
}

// Pause waits for Enter. Exhausted input is not an error here.
func (p *Prompter) Pause(message string) error {
	_, err := p.Ask(message)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
