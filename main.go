package main

import (
	"errors"
	"fmt"
	"github.com/fzft/go-hashset/cmd"
	"github.com/fzft/go-hashset/log"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"os"
)

const (
	exitCodeSuccess = iota
	exitCodeUsage
	exitCodeCommandError
	exitCodeInternal
)

func main() {
	config := cmd.DefaultConfig()

	flags := pflag.NewFlagSet("hsetcli", pflag.ContinueOnError)
	flags.IntVarP(&config.Buckets, "buckets", "n", config.Buckets, "initial bucket count")
	raw := flags.Bool("raw", false, "use raw formatting for replies (default when stdout is not a tty)")
	noRaw := flags.Bool("no-raw", false, "force formatted output even when stdout is not a tty")
	verbose := flags.BoolP("verbose", "v", false, "log at debug level, including every rehash")
	flags.StringVar(&config.HistFile, "history", config.HistFile, "history file ($"+cmd.CliHisFileEnv+" also works)")
	version := flags.Bool("version", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hsetcli [OPTIONS] [command [arg [arg ...]]]\n\n%s", flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(exitCodeSuccess)
		}
		os.Exit(exitCodeUsage)
	}
	if *version {
		fmt.Println("hsetcli " + Version())
		os.Exit(exitCodeSuccess)
	}
	switch {
	case *raw:
		config.Output = cmd.OutputRaw
	case *noRaw:
		config.Output = cmd.OutputStandard
	}

	if err := log.InitLogger(*verbose); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(exitCodeInternal)
	}
	defer log.Logger.Sync()

	cli := cmd.NewCli(config, os.Stdout, log.Logger)

	// one shot mode, like redis-cli with trailing arguments
	if args := flags.Args(); len(args) > 0 {
		if err := cli.Eval(args); err != nil && !errors.Is(err, cmd.ErrQuit) {
			log.Logger.Sync()
			os.Exit(exitCodeCommandError)
		}
		return
	}

	if err := cli.Repl(); err != nil {
		log.Logger.Error("shutting down shell", zap.Error(err))
	}
}
