package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/sdlimdraw"
	"github.com/sirupsen/logrus"
)

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

type command struct {
	name      string
	short     string
	long      string
	commander flags.Commander
}

var commands []command

func register(name, short, long string, commander flags.Commander) {
	commands = append(commands, command{name, short, long, commander})
}

func parseCmd(opts *options) *flags.Parser {
	cmdParser := flags.NewParser(opts, flags.Default)
	for _, cmd := range commands {
		if _, err := cmdParser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.commander); err != nil {
			panic(err)
		}
	}
	return cmdParser
}

func setupLogging(verbose bool) {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	sdlimdraw.SetLogger(logrus.WithField("pkg", "sdlimdraw"))
}

func main() {
	var opts options
	cmdParser := parseCmd(&opts)
	cmdParser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging(opts.Verbose)
		if cmd == nil {
			return nil
		}

		if err := sdlimdraw.Init(); err != nil {
			return err
		}
		defer sdlimdraw.Quit()

		return cmd.Execute(args)
	}

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
