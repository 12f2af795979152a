package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestRecordTransactions(t *testing.T) {
	workspace(t)

	steps := []struct {
		cmd  subcommands.Command
		args []string
	}{
		{&depositCmd{}, []string{"-d", "2024-04-09", "-c", "100", "-m", "salary"}},
		{&buyCmd{}, []string{"-d", "2024-05-01", "-s", "GOOGL", "-q", "2", "-c", "80"}},
		{&sellCmd{}, []string{"-d", "2024-06-03", "-s", "GOOGL", "-q", "1", "-c", "45.5"}},
		{&withdrawCmd{}, []string{"-d", "2024-06-04", "-c", "10"}},
	}
	for _, s := range steps {
		status, out := execute(t, s.cmd, s.args...)
		if status != subcommands.ExitSuccess {
			t.Fatalf("%s %v: got status %v, want success", s.cmd.Name(), s.args, status)
		}
		if !strings.Contains(out, "Successfully appended") {
			t.Errorf("%s: unexpected output %q", s.cmd.Name(), out)
		}
	}

	want := `{"type":"deposit","date":"2024-04-09","cash":100.00,"memo":"salary"}
{"type":"buy","date":"2024-05-01","security":"GOOGL","quantity":2.00,"cash":80.00}
{"type":"sell","date":"2024-06-03","security":"GOOGL","quantity":1.00,"cash":45.50}
{"type":"withdrawal","date":"2024-06-04","cash":10.00}
`
	if got := readFile(t, *ledgerFile); got != want {
		t.Errorf("ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}

	p, err := DecodePosition()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.String(), "Position{cash=55.50 USD, securityPositions={GOOGL=1.00}}"; got != want {
		t.Errorf("position: got %q, want %q", got, want)
	}
}

func TestRecordTransactionErrors(t *testing.T) {
	workspace(t)

	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"unknown security", &buyCmd{}, []string{"-s", "MSFT", "-q", "1", "-c", "1"}},
		{"missing quantity", &sellCmd{}, []string{"-s", "IBM", "-c", "1"}},
		{"negative cash", &depositCmd{}, []string{"-c", "-5"}},
		{"invalid date", &withdrawCmd{}, []string{"-d", "someday", "-c", "5"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := execute(t, tc.cmd, tc.args...)
			if status != subcommands.ExitUsageError {
				t.Errorf("got status %v, want usage error", status)
			}
		})
	}

	txs, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 0 {
		t.Errorf("invalid transactions were recorded: %v", txs)
	}
}

func TestFormatLedger(t *testing.T) {
	workspace(t)
	writeFile(t, *ledgerFile, `{"type":"buy","date":"2024-05-01","security":"IBM","quantity":1,"cash":150}

{"date":"2024-01-03","cash":1000,"type":"deposit","memo":"this is a comment"}
{"type":"withdrawal","date":"2024-05-01","cash":20}
`)
	want := `{"type":"deposit","date":"2024-01-03","cash":1000.00,"memo":"this is a comment"}
{"type":"buy","date":"2024-05-01","security":"IBM","quantity":1.00,"cash":150.00}
{"type":"withdrawal","date":"2024-05-01","cash":20.00}
`

	t.Run("stdout", func(t *testing.T) {
		status, out := execute(t, &formatLedgerCmd{}, "-o", "-")
		if status != subcommands.ExitSuccess {
			t.Fatalf("got status %v, want success", status)
		}
		if out != want {
			t.Errorf("Stdout output mismatch.\nGot:\n%s\nWant:\n%s", out, want)
		}
	})

	t.Run("in place", func(t *testing.T) {
		status, _ := execute(t, &formatLedgerCmd{})
		if status != subcommands.ExitSuccess {
			t.Fatalf("got status %v, want success", status)
		}
		if got := readFile(t, *ledgerFile); got != want {
			t.Errorf("Default output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
		}
	})
}

func TestFormatLedgerInvalid(t *testing.T) {
	workspace(t)
	writeFile(t, *ledgerFile, `{"type":"deposit","date":"2024-01-03","cash":1000,"security":"IBM"}`+"\n")

	status, _ := execute(t, &formatLedgerCmd{}, "-o", "-")
	if status != subcommands.ExitFailure {
		t.Errorf("got status %v, want failure", status)
	}
}
