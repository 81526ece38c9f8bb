package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt [-o <output_file>]

  Validates and formats the journal file. This command reads all records,
  validates them by replaying the journal, sorts them by date, and writes
  them back in a canonical JSONL format. By default the journal is rewritten
  in place.

Usage Examples:
# Rewrites the default journal file.
$ fin fmt
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write the formatted journal here instead of in place.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := fintrack.EncodeLedger(&buf, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting journal: %v\n", err)
		return subcommands.ExitFailure
	}

	out := p.output
	if out == "" {
		out = *ledgerFile
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal file %q: %v\n", out, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d record(s) into %s\n", len(ledger.Records()), out)
	return subcommands.ExitSuccess
}
