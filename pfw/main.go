// Command pfw is the freelance dashboard CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/projectflow/projectflow/cmd"
)

func main() {
	// Shell completion: a no-op unless invoked by the completion hooks.
	completer().Complete("pfw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completer describes the command tree for shell completion.
func completer() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":   predict.Dirs("*"),
			"config": predict.Files("*.toml"),
			"remote": predict.Nothing,
		},
	}
}
