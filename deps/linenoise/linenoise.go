package linenoise

import (
	"errors"
	"fmt"
	"github.com/peterh/liner"
	"io"
	"os"
	"strings"
)

// ErrAborted is returned by Prompt when the user hits Ctrl-C.
var ErrAborted = errors.New("aborted")

// LineNoise wraps a liner state with history files and a few helpers the
// shell needs.
type LineNoise struct {
	*liner.State
	last string
}

func New() *LineNoise {
	ln := &LineNoise{State: liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	return ln
}

// Prompt reads one line. End of input is reported as io.EOF.
func (ln *LineNoise) Prompt(prompt string) (string, error) {
	line, err := ln.State.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrAborted
	case err != nil:
		return "", err
	}
	return line, nil
}

// AppendHistory records line unless it is blank or repeats the previous entry.
func (ln *LineNoise) AppendHistory(line string) {
	line = strings.TrimSpace(line)
	if line == "" || line == ln.last {
		return
	}
	ln.last = line
	ln.State.AppendHistory(line)
}

// HistoryLoad reads history from path. A missing file is not an error.
func (ln *LineNoise) HistoryLoad(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = ln.ReadHistory(f)
	return err
}

func (ln *LineNoise) HistorySave(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ClearScreen writes the ANSI home + erase display sequence to w.
func ClearScreen(w io.Writer) error {
	_, err := fmt.Fprint(w, "\x1b[H\x1b[2J")
	return err
}
