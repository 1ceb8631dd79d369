// Package terminal is a small line editing layer over ansi/v100 style
// terminals, used by the interactive tools.
package terminal // import "fortio.org/devtools/terminal"

import (
	"errors"
	"io"
	"os"

	"fortio.org/log"
	"golang.org/x/term"
)

type Terminal struct {
	fd       int
	oldState *term.State
	term     *term.Terminal
	Out      io.Writer
}

// Open opens stdin as a terminal, do `defer terminal.Close()`
// to restore the terminal to its original state upon exit.
func Open() (*Terminal, error) {
	return New(os.Stdin, os.Stderr, int(os.Stdin.Fd())) //nolint:gosec // fd fits in int.
}

// New sets up a line editor reading in and writing to out. fd is only used
// to check for, and switch to, raw mode. Pass -1 for non terminal input (tests).
func New(in io.Reader, out io.Writer, fd int) (*Terminal, error) {
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := &Terminal{
		fd: fd,
	}
	t.term = term.NewTerminal(rw, "")
	t.Out = t.term
	if !t.IsTerminal() {
		t.Out = out // no need to add \r for non raw mode.
		return t, nil
	}
	var err error
	t.oldState, err = term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	t.term.SetBracketedPasteMode(true)
	return t, nil
}

func (t *Terminal) IsTerminal() bool {
	return t.fd >= 0 && term.IsTerminal(t.fd)
}

// Setups fortio logger to write to the terminal as needed to preserve prompt.
func (t *Terminal) LoggerSetup() {
	// Keep same color logic as fortio logger, so flags like -logger-no-color work.
	colormode := log.ColorMode()
	log.SetOutput(t.Out)
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	t.term.SetPrompt("")
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	t.Out = os.Stderr
	log.SetOutput(os.Stderr)
	return err
}

func (t *Terminal) ReadLine() (string, error) {
	c, err := t.term.ReadLine()
	// That error isn't an error that needs to be propagated,
	// it's just to allow copy/paste without autocomplete.
	if errors.Is(err, term.ErrPasteIndicator) {
		return c, nil
	}
	return c, err
}

func (t *Terminal) SetPrompt(s string) {
	t.term.SetPrompt(s)
}

// Pass "this" back so AutoCompleteCallback can use t.Out etc.
// (compared to the original x/term callback).
type AutoCompleteCallback func(t *Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool)

func (t *Terminal) SetAutoCompleteCallback(f AutoCompleteCallback) {
	t.term.AutoCompleteCallback = func(line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		return f(t, line, pos, key)
	}
}

// PrefixCompleter returns an AutoCompleteCallback completing the first word
// of the line from words on tab. With several candidates, their common prefix
// is used and the candidates are listed.
func PrefixCompleter(words []string) AutoCompleteCallback {
	return func(t *Terminal, line string, pos int, key rune) (string, int, bool) {
		if key != '\t' || pos != len(line) {
			return "", 0, false
		}
		var matches []string
		for _, w := range words {
			if len(w) >= len(line) && w[:len(line)] == line {
				matches = append(matches, w)
			}
		}
		switch len(matches) {
		case 0:
			return "", 0, false
		case 1:
			return matches[0] + " ", len(matches[0]) + 1, true
		}
		prefix := commonPrefix(matches)
		if len(prefix) == len(line) {
			log.Infof("%v", matches)
		}
		return prefix, len(prefix), true
	}
}

func commonPrefix(words []string) string {
	p := words[0]
	for _, w := range words[1:] {
		i := 0
		for i < len(p) && i < len(w) && p[i] == w[i] {
			i++
		}
		p = p[:i]
	}
	return p
}
