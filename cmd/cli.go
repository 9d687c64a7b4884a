package cmd

import (
	"errors"
	"fmt"
	"github.com/fzft/go-hashset/deps/linenoise"
	"github.com/fzft/go-hashset/hashset"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	CliHisFileEnv     = "HSETCLI_HISTFILE"
	CliHisFileDefault = ".hsetcli_history"
)

type CliConfig struct {
	// Buckets is the initial bucket count of the shell's set.
	Buckets int
	Output  OutputMode
	// HistFile is where the REPL keeps its history; empty disables it.
	HistFile string
	// Styled enables pterm colours for errors and banners.
	Styled bool
	// Width truncates DUMP lines, 0 means no limit.
	Width int

	prompt string
}

// DefaultConfig derives defaults from the environment: raw output and no
// styling unless stdout is a terminal.
func DefaultConfig() *CliConfig {
	tty := isatty.IsTerminal(os.Stdout.Fd())
	config := &CliConfig{
		Buckets:  hashset.DefaultBuckets,
		Output:   OutputRaw,
		HistFile: getDotfilePath(CliHisFileEnv, CliHisFileDefault),
		Styled:   tty,
		Width:    terminalWidth(os.Stdout),
	}
	if tty {
		config.Output = OutputStandard
	}
	return config
}

// Cli is an interactive shell around a single string set plus a snapshot
// slot used by SAVE, SWAP and EQUAL.
type Cli struct {
	config   *CliConfig
	set      *hashset.Set[string]
	snapshot *hashset.Set[string]
	out      io.Writer
	logger   *zap.Logger
	line     *linenoise.LineNoise
}

func NewCli(config *CliConfig, out io.Writer, logger *zap.Logger) *Cli {
	cli := &Cli{
		config: config,
		out:    out,
		logger: logger,
		set: hashset.New(
			hashset.WithBuckets[string](config.Buckets),
			hashset.WithLogger[string](logger)),
	}
	if !config.Styled {
		pterm.DisableStyling()
	}
	cli.refreshPrompt()
	return cli
}

// Eval runs one input line already split into words. A leading number
// repeats the command. Replies and command errors are printed; the first
// error is returned so callers can stop on ErrQuit or set an exit code.
func (cli *Cli) Eval(argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	repeat := 1
	if n, err := strconv.Atoi(argv[0]); err == nil && len(argv) > 1 {
		if n <= 0 {
			cli.printReply(nil, ErrInvalidRepeat)
			return ErrInvalidRepeat
		}
		repeat, argv = n, argv[1:]
	}

	var first error
	for i := 0; i < repeat; i++ {
		reply, err := cli.exec(argv)
		if errors.Is(err, ErrQuit) {
			return err
		}
		cli.printReply(reply, err)
		if err != nil && first == nil {
			first = err
		}
	}
	cli.refreshPrompt()
	return first
}

func (cli *Cli) exec(argv []string) (Reply, error) {
	c, err := lookupCommand(argv[0])
	if err != nil {
		return nil, err
	}
	if err := c.checkArity(len(argv)); err != nil {
		return nil, err
	}
	return c.proc(cli, argv)
}

func (cli *Cli) printReply(reply Reply, err error) {
	if err != nil {
		if cli.config.Styled {
			fmt.Fprint(cli.out, pterm.Error.Sprintln(err.Error()))
			return
		}
		reply = ErrorReply{Err: err}
	}
	if reply == nil {
		return
	}
	fmt.Fprintln(cli.out, reply.Format(cli.config.Output))
}

// Repl reads commands until EOF or QUIT. Ctrl-C discards the current line.
func (cli *Cli) Repl() error {
	cli.line = linenoise.New()
	if cli.config.HistFile != "" {
		if err := cli.line.HistoryLoad(cli.config.HistFile); err != nil {
			cli.logger.Warn("load history", zap.String("file", cli.config.HistFile), zap.Error(err))
		}
	}

	if cli.config.Styled {
		pterm.Info.Println("hashset shell, type HELP for commands, QUIT or Ctrl-D to leave")
	}

	for {
		line, err := cli.line.Prompt(cli.config.prompt)
		if errors.Is(err, linenoise.ErrAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				cli.logger.Error("read line", zap.Error(err))
			}
			break
		}

		argv := strings.Fields(line)
		if len(argv) == 0 {
			continue
		}
		cli.line.AppendHistory(line)
		if errors.Is(cli.Eval(argv), ErrQuit) {
			break
		}
	}
	return cli.Close()
}

// Close saves the history and restores the terminal.
func (cli *Cli) Close() error {
	if cli.line == nil {
		return nil
	}
	var errs MultiError
	if cli.config.HistFile != "" {
		if err := cli.line.HistorySave(cli.config.HistFile); err != nil {
			errs = append(errs, fmt.Errorf("save history: %w", err))
		}
	}
	if err := cli.line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("restore terminal: %w", err))
	}
	cli.line = nil
	return errs.ErrOrNil()
}

func (cli *Cli) refreshPrompt() {
	cli.config.prompt = fmt.Sprintf("hashset[%d/%d]> ", cli.set.Size(), cli.set.Buckets())
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}
