package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "print the percentage spent by category" }
func (*chartCmd) Usage() string {
	return `bgt chart

  Replays the operations script and prints a bar chart of the share of all
  withdrawals made in each category, in the order categories were opened.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook(Logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, book.SpendChart())
	return subcommands.ExitSuccess
}
