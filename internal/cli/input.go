package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/tasklists/internal/common"
	"github.com/dmitrijs2005/tasklists/internal/ui"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
// In tests you can replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// Surrounding whitespace is trimmed. If EOF occurs after some input was read,
// the partial line is returned; EOF on an empty line returns common.ErrInputClosed.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return strings.TrimSpace(line), nil
			}
			return "", common.ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Console talks to the user over a pair of streams. It implements both
// services.Prompter and services.Reporter.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewConsole wraps in and out. Password prompts hide the input only when in
// is a terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Console{reader: bufio.NewReader(in), out: out, fd: fd}
}

// Confirm asks a yes/no question until it gets an answer.
func (c *Console) Confirm(question string) (bool, error) {
	for {
		answer, err := GetSimpleText(c.reader, question+" "+ui.Muted.Sprint("y/n"), c.out)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, ui.Info.Sprint("→")+" Please answer "+ui.Code.Sprint("y")+" or "+ui.Code.Sprint("n"))
	}
}

// Text asks for a line until it does not match forbidden.
func (c *Console) Text(label string, forbidden *regexp.Regexp) (string, error) {
	for {
		text, err := GetSimpleText(c.reader, label, c.out)
		if err != nil {
			return "", err
		}
		if forbidden == nil {
			return text, nil
		}
		if bad := forbidden.FindString(text); bad != "" {
			fmt.Fprintln(c.out, ui.Error.Sprint("✗")+" "+ui.Highlight.Sprint(bad)+" is not allowed here, please try again")
			continue
		}
		return text, nil
	}
}

// Password asks for a secret. On a terminal the input is not echoed.
func (c *Console) Password(label string) (string, error) {
	if c.fd < 0 || !isTerminal(c.fd) {
		return GetSimpleText(c.reader, label, c.out)
	}

	if _, err := fmt.Fprint(c.out, label+"\n> "); err != nil {
		return "", err
	}
	pw, err := readPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)

	return string(pw), nil
}

// ReportError shows a failure with its hint lines.
func (c *Console) ReportError(msg string) {
	fmt.Fprint(c.out, ui.ErrorBlock(msg))
}

// Announce shows a success message.
func (c *Console) Announce(msg string) {
	fmt.Fprint(c.out, ui.SuccessLine(msg))
}
