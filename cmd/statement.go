package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type statementCmd struct {
	category string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "print the ledger statement of categories" }
func (*statementCmd) Usage() string {
	return `bgt statement [-c <category>]

  Replays the operations script and prints the statement of every category,
  or only of the one given with -c.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to print. Prints all categories by default.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook(Logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.category != "" {
		cat := book.Category(c.category)
		if cat == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", c.category)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(stdout, cat)
		return subcommands.ExitSuccess
	}

	statements := make([]string, 0)
	for _, cat := range book.Categories() {
		statements = append(statements, cat.String())
	}
	fmt.Fprintln(stdout, strings.Join(statements, "\n\n"))
	return subcommands.ExitSuccess
}
