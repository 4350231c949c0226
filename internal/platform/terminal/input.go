package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads user input. ReadPassword must not echo when attached to a
// terminal.
type Prompter interface {
	ReadPassword(prompt string) (string, error)
	ReadLine(prompt string) (string, error)
}

// Console prompts on out and reads from in. Password input is hidden when in
// is a terminal and read as a plain line otherwise, so piped input works.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	isTerm bool
}

func NewConsole(in *os.File, out io.Writer) *Console {
	fd := int(in.Fd())
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		fd:     fd,
		isTerm: term.IsTerminal(fd),
	}
}

// NewReaderConsole reads plain lines from r.
func NewReaderConsole(r io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: out, fd: -1}
}

func (c *Console) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.isTerm {
		return c.readLine()
	}

	password, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine strips only the line terminator; passwords keep their spaces.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
