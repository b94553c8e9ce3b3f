package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mkraev/kopilka/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Calling Complete first
// lets the completion hook short-circuit before flag parsing.
func completion() {
	sub := func() *complete.Command {
		return &complete.Command{Flags: map[string]complete.Predictor{
			"p":    predict.Set{"day", "month", "year"},
			"from": predict.Nothing,
			"to":   predict.Nothing,
			"dir":  predict.Set{"income", "expense", "transfer"},
		}}
	}
	kpk := &complete.Command{
		Sub: map[string]*complete.Command{
			"new-item":    {Flags: map[string]complete.Predictor{"kind": predict.Set{"asset", "liability"}}},
			"tx":          sub(),
			"realize":     {},
			"delete":      {},
			"networth":    sub(),
			"breakdown":   sub(),
			"categories":  {},
			"fetch-rates": sub(),
			"advise":      sub(),
			"topic":       {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"rates-file":  predict.Files("*.jsonl"),
			"db-file":     predict.Files("*.db"),
		},
	}
	kpk.Complete("kpk")
}

func main() {
	completion()

	// local overrides for GEMINI_API_KEY and friends
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
