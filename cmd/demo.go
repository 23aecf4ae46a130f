package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type demoCmd struct {
	jsonl bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the demo scenario" }
func (*demoCmd) Usage() string {
	return `bgt demo [-jsonl]

  Replays a built-in scenario of three categories and prints their
  statements and spend chart. With -jsonl, prints the scenario as an
  operations script instead, ready to be edited and used with -ops.

Usage Examples:
$ bgt demo -jsonl > operations.jsonl
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonl, "jsonl", false, "Print the scenario as a JSONL operations script.")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ops := budget.Demo()
	if c.jsonl {
		if err := budget.EncodeOperations(stdout, ops...); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	book, err := ReplayBook(Logger(), ops)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, cat := range book.Categories() {
		fmt.Fprintf(stdout, "%s\n\n", cat)
	}
	fmt.Fprintln(stdout, book.SpendChart())
	return subcommands.ExitSuccess
}
