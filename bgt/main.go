package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ops": predict.Files("*.jsonl"),
		"v":   predict.Set{},
	},
	Sub: map[string]*complete.Command{
		"statement": {Flags: map[string]complete.Predictor{"c": predict.Set{}}},
		"chart":     {},
		"report":    {Flags: map[string]complete.Predictor{"raw": predict.Set{}, "short": predict.Set{}}},
		"demo":      {Flags: map[string]complete.Predictor{"jsonl": predict.Set{}}},
		"topic":     {Args: predict.Set{"operations", "statement", "chart", "*"}},
		"help":      {},
		"commands":  {},
		"flags":     {},
	},
}

func main() {
	name := path.Base(os.Args[0])
	// exits when the shell is asking for completions.
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
