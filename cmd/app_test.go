package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// Helper function to create a temporary journal file
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	tmpfile, err := os.Create(filepath.Join(tmp, "test_journal.jsonl"))
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer tmpfile.Close()

	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	return tmpfile.Name()
}

// swapLedgerFile points the global ledger file at 'name' for the duration of
// the test.
func swapLedgerFile(t *testing.T, name string) {
	t.Helper()
	oldLedgerFile := ledgerFile
	ledgerFile = &name
	t.Cleanup(func() { ledgerFile = oldLedgerFile })
}

// TestFmtCanonicalOutput checks that fmt sorts records chronologically and
// rewrites them with a canonical field order.
func TestFmtCanonicalOutput(t *testing.T) {
	originalContent := `{"date":"2026-01-10","amount":120.5,"record":"expense","category":"Food","currency":"EUR","memo":"market"}
{"record":"budget","date":"2026-01-01","name":"groceries","category":"Food","currency":"EUR","amount":500,"from":"2026-01-01","to":"2026-01-31","alert50":true,"alert75":true,"alert100":true,"alertExceeded":true}
`
	expectedContent := `{"record":"budget","date":"2026-01-01","name":"groceries","category":"Food","currency":"EUR","amount":500,"from":"2026-01-01","to":"2026-01-31","alert50":true,"alert75":true,"alert100":true,"alertExceeded":true,"active":true}
{"record":"expense","date":"2026-01-10","memo":"market","category":"Food","currency":"EUR","amount":120.5}
`

	tempLedgerFile := createTempLedger(t, originalContent)
	swapLedgerFile(t, tempLedgerFile)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read formatted journal: %v", err)
	}
	if string(got) != expectedContent {
		t.Errorf("Formatted journal mismatch.\ngot:\n%s\nwant:\n%s", got, expectedContent)
	}
}

// TestExpenseAppendsRecord checks that the expense command appends exactly one
// record to the journal.
func TestExpenseAppendsRecord(t *testing.T) {
	tempLedgerFile := createTempLedger(t, "")
	swapLedgerFile(t, tempLedgerFile)

	cmd := &expenseCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-cat", "Food", "-a", "42.50", "-d", "2026-01-10", "-m", "market"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read journal: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 record, got %d: %q", len(lines), got)
	}
	if want := `{"record":"expense","date":"2026-01-10","memo":"market","category":"Food","currency":"EUR","amount":42.5}`; lines[0] != want {
		t.Errorf("Appended record mismatch.\ngot:  %s\nwant: %s", lines[0], want)
	}
}

// TestAppendRejectsInvalidRecord checks that a payment against an undeclared
// debt is rejected and leaves the journal untouched.
func TestAppendRejectsInvalidRecord(t *testing.T) {
	tempLedgerFile := createTempLedger(t, "")
	swapLedgerFile(t, tempLedgerFile)

	cmd := &payCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-debt", "ghost", "-a", "100"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}

	got, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read journal: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected untouched journal, got %q", got)
	}
}
