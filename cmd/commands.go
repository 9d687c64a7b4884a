package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/fzft/go-hashset/deps/linenoise"
	"github.com/fzft/go-hashset/hashset"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"sort"
	"strings"
)

// commandDocs documentation info used for the help command.
type commandDocs struct {
	name    string
	params  string
	summary string
	// arity counts the command name; a negative arity is a minimum.
	arity int
}

type cliCommand struct {
	commandDocs
	proc func(cli *Cli, argv []string) (Reply, error)
}

var commandTable map[string]*cliCommand

func init() {
	commands := []*cliCommand{
		{commandDocs{"insert", "key [key ...]", "Add keys, reply with the number actually inserted", -2}, insertCommand},
		{commandDocs{"erase", "key [key ...]", "Remove keys, reply with the number removed", -2}, eraseCommand},
		{commandDocs{"count", "key", "Reply 1 if key is present, 0 otherwise", 2}, countCommand},
		{commandDocs{"find", "key", "Reply with the stored key or nil", 2}, findCommand},
		{commandDocs{"size", "", "Number of keys", 1}, sizeCommand},
		{commandDocs{"empty", "", "Reply 1 if the set holds no key", 1}, emptyCommand},
		{commandDocs{"clear", "", "Remove every key, keeping the bucket count", 1}, clearCommand},
		{commandDocs{"keys", "", "List keys in iteration order", 1}, keysCommand},
		{commandDocs{"dump", "", "Print every bucket chain", 1}, dumpCommand},
		{commandDocs{"stats", "", "Bucket count, size and load factor", 1}, statsCommand},
		{commandDocs{"save", "", "Copy the set into the snapshot slot", 1}, saveCommand},
		{commandDocs{"swap", "", "Swap the set with the snapshot", 1}, swapCommand},
		{commandDocs{"equal", "", "Reply 1 if the set equals the snapshot", 1}, equalCommand},
		{commandDocs{"help", "[command]", "Show help", -1}, helpCommand},
		{commandDocs{"cls", "", "Clear the screen", 1}, clsCommand},
		{commandDocs{"quit", "", "Leave the shell", 1}, quitCommand},
		{commandDocs{"exit", "", "Leave the shell", 1}, quitCommand},
	}
	commandTable = make(map[string]*cliCommand, len(commands))
	for _, c := range commands {
		commandTable[c.name] = c
	}
}

func lookupCommand(name string) (*cliCommand, error) {
	c, ok := commandTable[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownCommand, name)
	}
	return c, nil
}

func (c *cliCommand) checkArity(argc int) error {
	if (c.arity > 0 && argc != c.arity) || (c.arity < 0 && argc < -c.arity) {
		return fmt.Errorf("%w for '%s' command", ErrWrongArgs, c.name)
	}
	return nil
}

func insertCommand(cli *Cli, argv []string) (Reply, error) {
	inserted := 0
	for _, key := range argv[1:] {
		if _, ok := cli.set.Insert(key); ok {
			inserted++
		}
	}
	return IntegerReply(inserted), nil
}

func eraseCommand(cli *Cli, argv []string) (Reply, error) {
	removed := 0
	for _, key := range argv[1:] {
		removed += cli.set.Erase(key)
	}
	return IntegerReply(removed), nil
}

func countCommand(cli *Cli, argv []string) (Reply, error) {
	return IntegerReply(cli.set.Count(argv[1])), nil
}

func findCommand(cli *Cli, argv []string) (Reply, error) {
	it := cli.set.Find(argv[1])
	if it.Equal(cli.set.End()) {
		return SharedNilReply, nil
	}
	return BulkReply(it.Key()), nil
}

func sizeCommand(cli *Cli, _ []string) (Reply, error) {
	return IntegerReply(cli.set.Size()), nil
}

func emptyCommand(cli *Cli, _ []string) (Reply, error) {
	if cli.set.Empty() {
		return IntegerReply(1), nil
	}
	return IntegerReply(0), nil
}

func clearCommand(cli *Cli, _ []string) (Reply, error) {
	cli.set.Clear()
	return SharedOkReply, nil
}

func keysCommand(cli *Cli, _ []string) (Reply, error) {
	return ArrayReply(cli.set.Keys()), nil
}

func dumpCommand(cli *Cli, _ []string) (Reply, error) {
	var buf bytes.Buffer
	if err := cli.set.Dump(&buf); err != nil {
		return nil, err
	}
	if cli.config.Width <= 0 {
		return TextReply(buf.String()), nil
	}

	var b strings.Builder
	sc := bufio.NewScanner(&buf)
	sc.Buffer(nil, 1<<24)
	for sc.Scan() {
		b.WriteString(runewidth.Truncate(sc.Text(), cli.config.Width, "..."))
		b.WriteByte('\n')
	}
	return TextReply(b.String()), sc.Err()
}

func statsCommand(cli *Cli, _ []string) (Reply, error) {
	p := message.NewPrinter(language.English)
	s := cli.set
	return TextReply(p.Sprintf(
		"buckets: %d\nsize: %d\nload factor: %.2f\nrehash after: %d keys",
		s.Buckets(), s.Size(), s.LoadFactor(), s.Buckets()*hashset.MaxLoadFactor)), nil
}

func saveCommand(cli *Cli, _ []string) (Reply, error) {
	cli.snapshot = cli.set.Clone()
	return SharedOkReply, nil
}

func swapCommand(cli *Cli, _ []string) (Reply, error) {
	if cli.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	cli.set.Swap(cli.snapshot)
	return SharedOkReply, nil
}

func equalCommand(cli *Cli, _ []string) (Reply, error) {
	if cli.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	if cli.set.Equal(cli.snapshot) {
		return IntegerReply(1), nil
	}
	return IntegerReply(0), nil
}

func helpCommand(_ *Cli, argv []string) (Reply, error) {
	if len(argv) > 1 {
		c, err := lookupCommand(argv[1])
		if err != nil {
			return nil, err
		}
		return TextReply(fmt.Sprintf("\n  %s %s\n  summary: %s\n",
			strings.ToUpper(c.name), c.params, c.summary)), nil
	}

	names := make([]string, 0, len(commandTable))
	for name := range commandTable {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Commands (prefix with a number to repeat):\n")
	for _, name := range names {
		c := commandTable[name]
		usage := strings.TrimSpace(strings.ToUpper(c.name) + " " + c.params)
		fmt.Fprintf(&b, "  %-24s %s\n", usage, c.summary)
	}
	return TextReply(b.String()), nil
}

func clsCommand(cli *Cli, _ []string) (Reply, error) {
	return nil, linenoise.ClearScreen(cli.out)
}

func quitCommand(*Cli, []string) (Reply, error) {
	return nil, ErrQuit
}
