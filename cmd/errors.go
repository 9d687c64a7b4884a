package cmd

import (
	"errors"
	"strings"
)

type MultiError []error

func (m MultiError) Error() string {
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range m {
		b.WriteString("\n- " + err.Error())
	}
	return b.String()
}

// ErrOrNil collapses an empty MultiError to nil and a single one to its only error.
func (m MultiError) ErrOrNil() error {
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgs      = errors.New("wrong number of arguments")
	ErrNoSnapshot     = errors.New("no snapshot, run SAVE first")
	ErrInvalidRepeat  = errors.New("invalid repeat command option value")
)
