package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on out and reads one-line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. At end of input with
// nothing typed it returns io.EOF.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose asks question and lower-cases the answer, for y/n style prompts.
func (p *Prompter) Choose(question string) (string, error) {
	ans, err := p.Ask(question)
	return strings.ToLower(ans), err
}
