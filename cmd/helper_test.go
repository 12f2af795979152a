package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// setFlag overrides a global flag value for the duration of the test.
func setFlag(t *testing.T, flagVar *string, value string) {
	t.Helper()
	old := *flagVar
	*flagVar = value
	t.Cleanup(func() { *flagVar = old })
}

// workspace points every file flag to a fresh temporary folder.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	setFlag(t, ledgerFile, filepath.Join(dir, "ledger.jsonl"))
	setFlag(t, positionFile, filepath.Join(dir, "position.json"))
	setFlag(t, marketFile, filepath.Join(dir, "market.jsonl"))
	setFlag(t, prefsFile, "")
	setFlag(t, todayFlag, "")
	return dir
}

// writeFile creates a file with content.
func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// readFile returns the content of a file.
func readFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(content)
}

// execute runs a command with its own arguments and returns its status and
// everything it printed on stdout.
func execute(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	status := cmd.Execute(context.Background(), f)
	w.Close()
	out, _ := io.ReadAll(r)
	return status, string(out)
}
