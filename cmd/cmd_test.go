package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Helper function to create a temporary operations script
func createTempScript(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "operations.jsonl")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return name
}

// run executes a subcommand against the script and returns its output.
func run(t *testing.T, c subcommands.Command, script string, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()

	oldOps, oldStdout := opsFile, stdout
	opsFile = &script
	var out bytes.Buffer
	stdout = &out
	defer func() { opsFile, stdout = oldOps, oldStdout }()

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid flags %v: %v", args, err)
	}
	return c.Execute(context.Background(), f), out.String()
}

const script = `{"command":"deposit","category":"Food","amount":900,"memo":"deposit"}
{"command":"withdraw","category":"Food","amount":105.55,"memo":"dinner out"}
{"command":"deposit","category":"Auto","amount":100}
{"command":"withdraw","category":"Auto","amount":250,"memo":"refused"}
`

func TestStatementCmd(t *testing.T) {
	name := createTempScript(t, script)

	status, out := run(t, &statementCmd{}, name, "-c", "Food")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := "*************Food*************\n" +
		"deposit                 900.00\n" +
		"dinner out             -105.55\n" +
		"Total: 794.45\n"
	if out != want {
		t.Errorf("statement output mismatch.\nGot:\n%s\nWant:\n%s", out, want)
	}

	status, out = run(t, &statementCmd{}, name)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out, "Total: 794.45\n\n*************Auto*************\n") {
		t.Errorf("statements are not separated by a blank line:\n%s", out)
	}
	if strings.Contains(out, "refused") {
		t.Errorf("refused withdrawal appears in the statement:\n%s", out)
	}
}

func TestStatementCmd_UnknownCategory(t *testing.T) {
	status, _ := run(t, &statementCmd{}, createTempScript(t, script), "-c", "Travel")
	if status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}

func TestChartCmd(t *testing.T) {
	status, out := run(t, &chartCmd{}, createTempScript(t, script))
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if got, want := lines[1], "100| o     "; got != want {
		t.Errorf("row 100 = %q, want %q", got, want)
	}
	if got, want := lines[len(lines)-1], "     d  o  "; got != want {
		t.Errorf("last name row = %q, want %q", got, want)
	}
}

func TestReportCmd_Raw(t *testing.T) {
	status, out := run(t, &reportCmd{}, createTempScript(t, script), "-raw")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.HasPrefix(out, "# Budget report\n") {
		t.Errorf("report does not start with its title:\n%s", out)
	}
	if !strings.Contains(out, "| Food | 900.00 | 105.55 | 794.45 | 100% |") {
		t.Errorf("report misses the Food balances:\n%s", out)
	}
}

func TestDemoCmd_JSONL(t *testing.T) {
	status, out := run(t, &demoCmd{}, "", "-jsonl")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	ops, err := budget.DecodeOperations(strings.NewReader(out))
	if err != nil {
		t.Fatalf("demo script does not decode: %v", err)
	}
	if got, want := len(ops), len(budget.Demo()); got != want {
		t.Errorf("demo script has %d operations, want %d", got, want)
	}
}

func TestDemoCmd(t *testing.T) {
	status, out := run(t, &demoCmd{}, "")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	book, _ := budget.Replay(budget.Demo()...)
	if !strings.HasSuffix(out, book.SpendChart()+"\n") {
		t.Errorf("demo output does not end with the spend chart:\n%s", out)
	}
}

func TestDecodeBook_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
	}{
		{"Missing file", filepath.Join(t.TempDir(), "missing.jsonl")},
		{"Negative amount", createTempScript(t, `{"command":"deposit","category":"Food","amount":-1}`)},
		{"Unknown command", createTempScript(t, `{"command":"buy","category":"Food","amount":1}`)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := run(t, &chartCmd{}, tc.script)
			if status != subcommands.ExitFailure {
				t.Errorf("Expected ExitFailure, got %v", status)
			}
		})
	}
}

func TestReplayBook_LogsRefused(t *testing.T) {
	var logs bytes.Buffer
	log := &logrus.Logger{
		Formatter: &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true},
		Out:       &logs,
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	ops, err := budget.DecodeOperations(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ReplayBook(log, ops); err != nil {
		t.Fatalf("ReplayBook() error: %v", err)
	}
	got := logs.String()
	for _, want := range []string{"level=warning", "Replay.InsufficientFunds", "category=Auto", "amount=250.00", "op=4"} {
		if !strings.Contains(got, want) {
			t.Errorf("log %q does not contain %q", got, want)
		}
	}
}

func TestDecodeOperations_Stdin(t *testing.T) {
	oldStdin := stdin
	stdin = io.Reader(strings.NewReader(script))
	defer func() { stdin = oldStdin }()

	status, out := run(t, &statementCmd{}, "-", "-c", "Auto")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.HasSuffix(out, "Total: 100\n") {
		t.Errorf("unexpected statement:\n%s", out)
	}
}

func TestTopicCmd(t *testing.T) {
	status, out := run(t, &topicCmd{}, "", "chart")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out, "Percentage spent by category") {
		t.Errorf("topic output misses the chart example:\n%s", out)
	}

	status, _ = run(t, &topicCmd{}, "", "unknown")
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}
