package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	raw            bool
	skipStatements bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a full budget report" }
func (*reportCmd) Usage() string {
	return `bgt report [-raw] [-short]

  Displays balances, statements and the spend chart of all categories.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it for the terminal.")
	f.BoolVar(&c.skipStatements, "short", false, "Do not print the category statements.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook(Logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	md := renderer.Report(book, renderer.RenderOptions{SkipStatements: c.skipStatements})
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
