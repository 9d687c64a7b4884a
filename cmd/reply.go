package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

type OutputMode uint8

const (
	OutputStandard OutputMode = iota
	OutputRaw
)

// Reply is the result of one shell command, rendered the way redis-cli
// renders server replies.
type Reply interface {
	Format(mode OutputMode) string
}

type StatusReply string

func (r StatusReply) Format(OutputMode) string {
	return string(r)
}

type IntegerReply int

func (r IntegerReply) Format(mode OutputMode) string {
	if mode == OutputRaw {
		return strconv.Itoa(int(r))
	}
	return fmt.Sprintf("(integer) %d", int(r))
}

// BulkReply is a single key.
type BulkReply string

func (r BulkReply) Format(mode OutputMode) string {
	if mode == OutputRaw {
		return string(r)
	}
	return strconv.Quote(string(r))
}

type NilReply struct{}

func (NilReply) Format(mode OutputMode) string {
	if mode == OutputRaw {
		return ""
	}
	return "(nil)"
}

// ArrayReply is a list of keys.
type ArrayReply []string

func (r ArrayReply) Format(mode OutputMode) string {
	if mode == OutputRaw {
		return strings.Join(r, "\n")
	}
	if len(r) == 0 {
		return "(empty set)"
	}
	var b strings.Builder
	width := len(strconv.Itoa(len(r)))
	for i, key := range r {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d) %s", width, i+1, strconv.Quote(key))
	}
	return b.String()
}

// TextReply is preformatted, possibly multi-line output.
type TextReply string

func (r TextReply) Format(OutputMode) string {
	return strings.TrimSuffix(string(r), "\n")
}

type ErrorReply struct {
	Err error
}

func (r ErrorReply) Format(OutputMode) string {
	return "(error) ERR " + r.Err.Error()
}

var (
	SharedOkReply  = StatusReply("OK")
	SharedNilReply = NilReply{}
)
