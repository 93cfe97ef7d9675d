package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line based answers from the player.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles *styles
}

func NewPrompter(in io.Reader, out io.Writer, st *styles) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: st,
	}
}

// Ask prints the question and returns the typed line without its line ending.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	return p.readLine()
}

// Confirm asks a yes/no question. An empty answer selects def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y"
	if !def {
		hint = "n"
	}

	for {
		fmt.Fprintf(p.out, "%s %s: ", question, p.styles.choices.Render(fmt.Sprintf("[y/n] (%s)", hint)))

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		fmt.Fprintln(p.out, p.styles.error.Render(msgInvalidConfirm))
	}
}

// Choose asks until the player types one of the choices and returns it as listed.
// Matching ignores case and surrounding whitespace.
func (p *Prompter) Choose(question string, choices []string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s %s: ", question, p.styles.choices.Render("["+strings.Join(choices, "/")+"]"))

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		if choice, ok := matchChoice(strings.TrimSpace(line), choices); ok {
			return choice, nil
		}

		fmt.Fprintln(p.out, p.styles.error.Render(msgInvalidChoice))
	}
}

func matchChoice(input string, choices []string) (string, bool) {
	for _, c := range choices {
		if strings.EqualFold(input, c) {
			return c, true
		}
	}
	return "", false
}

// readLine returns io.EOF only when no more input is available.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
