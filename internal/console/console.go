package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console reads operator input line by line and writes prompts and messages
type Console struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

// New creates a console. Prompts are only written when interactive is true.
func New(in io.Reader, out io.Writer, interactive bool) *Console {
	return &Console{
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

// Stdio creates a console on stdin/stdout, prompting only on a terminal
func Stdio() *Console {
	return New(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// Out returns the output writer
func (c *Console) Out() io.Writer {
	return c.out
}

// Interactive reports whether prompts are shown
func (c *Console) Interactive() bool {
	return c.interactive
}

// ReadLine shows prompt and returns the next trimmed line. ok is false at
// end of input.
func (c *Console) ReadLine(prompt string) (line string, ok bool, err error) {
	if c.interactive && prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	if !c.scanner.Scan() {
		return "", false, c.scanner.Err()
	}
	return strings.TrimSpace(c.scanner.Text()), true, nil
}

// Confirm asks a yes/no question. s, sim, y and yes answer yes; anything
// else, including end of input, answers no.
func (c *Console) Confirm(question string) (bool, error) {
	answer, ok, err := c.ReadLine("\n" + question + " (s/n): ")
	if err != nil || !ok {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true, nil
	}
	return false, nil
}

// Printf writes a formatted message
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line
func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}
