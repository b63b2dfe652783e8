package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassword reads the password without echo when stdin is a
// terminal, falling back to a plain line read otherwise (pipes, tests).
func (m *Menu) promptPassword(prompt string) string {
	fmt.Fprint(m.out, prompt)

	if f, ok := m.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(m.out)
		if err != nil {
			return ""
		}
		return string(pw)
	}

	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
