package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fintrack/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// completion is a no-op unless invoked by the shell completion protocol.
	completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"new-budget", "expense", "budgets", "reconcile",
		"new-debt", "pay", "debts", "payoff",
		"income", "incomes", "next-income",
		"new-investment", "buy", "sell", "sip", "value", "portfolio",
		"summary", "import", "fmt", "topic", "assist",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
}
