package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded help pages.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the budget help pages" }
func (*topicCmd) Usage() string {
	return `bgt topic [operations|statement|chart|*]

Prints a help page about budget scripts and reports. With no name it lists
the pages, "*" prints them all. Examples in the pages replay as they are.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	page, err := docs.GetTopics(names...)
	if err != nil {
		Logger().WithError(err).WithField("topics", names).Error("Topic.NotFound")
		return subcommands.ExitFailure
	}
	printMarkdown(page)
	return subcommands.ExitSuccess
}
