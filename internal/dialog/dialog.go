// Package dialog provides the blocking confirm, alert and prompt dialogs the
// action flows use to talk to the user.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dialog asks the user something and waits for the answer.
type Dialog interface {
	// Confirm asks a yes/no question. Anything but an explicit yes declines.
	Confirm(msg string) bool

	// Alert shows a message.
	Alert(msg string)

	// Prompt asks for a line of text. ok is false when the user cancelled.
	Prompt(msg string) (answer string, ok bool)
}

// Console is a Dialog over a terminal. End of input counts as cancel.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Dialog = (*Console)(nil)

// NewConsole reads answers from in and writes questions to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Confirm(msg string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", msg)
	answer, ok := c.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *Console) Alert(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Prompt(msg string) (string, bool) {
	fmt.Fprintf(c.out, "%s ", msg)
	return c.readLine()
}

// readLine returns the next trimmed line. A final line without a newline is
// still an answer; bare EOF is not.
func (c *Console) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(line), true
}
