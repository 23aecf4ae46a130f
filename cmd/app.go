// Package cmd implements the CLI application to replay and report on budgets.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&statementCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&demoCmd{}, "scripts")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var opsFile = flag.String("ops", "operations.jsonl", "Path to the operations script (JSONL format), - for stdin")
var verbose = flag.Bool("v", false, "Log every replayed operation")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

var stdin io.Reader = os.Stdin

// Logger returns the application logger. It writes to stderr, and logs at
// debug level when -v is set.
func Logger() *logrus.Logger {
	level := logrus.InfoLevel
	if *verbose {
		level = logrus.DebugLevel
	}
	return &logrus.Logger{
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
		},
		Out:   os.Stderr,
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}
}

// DecodeOperations reads the operations of the app script file.
func DecodeOperations() ([]budget.Operation, error) {
	filename := *opsFile
	if filename == "-" {
		return budget.DecodeOperations(stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open operations script: %w", err)
	}
	defer f.Close()

	ops, err := budget.DecodeOperations(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", filename, err)
	}
	return ops, nil
}

// ReplayBook replays the operations into a fresh book. Refused withdrawals
// and transfers are logged and skipped.
func ReplayBook(log *logrus.Logger, ops []budget.Operation) (*budget.Book, error) {
	book := budget.NewBook()
	for i, op := range ops {
		entry := log.WithField("op", i+1).WithField("command", op.What())
		ok, err := book.Apply(op)
		if err != nil {
			entry.WithError(err).Error("Replay.Error")
			return nil, fmt.Errorf("operation #%d: %w", i+1, err)
		}
		if !ok {
			entry.WithFields(refusedFields(op)).Warn("Replay.InsufficientFunds")
			continue
		}
		entry.Debug("Replay.Applied")
	}
	return book, nil
}

// DecodeBook decodes the app script and replays it.
func DecodeBook(log *logrus.Logger) (*budget.Book, error) {
	ops, err := DecodeOperations()
	if err != nil {
		return nil, err
	}
	return ReplayBook(log, ops)
}

func refusedFields(op budget.Operation) logrus.Fields {
	switch v := op.(type) {
	case budget.Withdraw:
		return logrus.Fields{"category": v.Category, "amount": v.Amount.String()}
	case budget.Transfer:
		return logrus.Fields{"category": v.From, "to": v.To, "amount": v.Amount.String()}
	default:
		return logrus.Fields{}
	}
}
