// Package ui formats console output of the Tasklists CLI.
//
// Colors come from fatih/color and are dropped when NO_COLOR is set or the
// terminal cannot show them; some formatters then fall back to plain text
// decorations so the meaning survives.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats commands and flags the user should type.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Success formats success indicators.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Info formats hints.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values such as usernames.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats prompts' secondary text.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// ErrorBlock renders a multi-line error: a red marker and first line,
// continuation lines indented under it.
func ErrorBlock(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	var b strings.Builder
	b.WriteString(Error.Sprint("✗ " + strings.TrimSpace(lines[0])))
	for _, l := range lines[1:] {
		b.WriteString("\n  ")
		b.WriteString(strings.TrimSpace(l))
	}
	b.WriteString("\n")
	return b.String()
}

// SuccessLine renders a single success message.
func SuccessLine(msg string) string {
	return Success.Sprint("✓") + " " + msg + "\n"
}
