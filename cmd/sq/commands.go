package main

import (
	"github.com/scott-cotton/cli"

	"github.com/prooflab/gentzen/search"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "sq").
		WithSynopsis("sq [opts] command [opts]").
		WithDescription("sq is a tool for working with sequent calculus proofs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sqMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			ViewCommand(cfg),
			DecomposeCommand(cfg),
			ProveCommand(cfg),
			ValidCommand(cfg),
			DiffCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("parse").
		WithAliases("p", "pa").
		WithSynopsis("parse <formula>").
		WithDescription("parse a formula and print its canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return parseRun(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view <sequent>").
		WithDescription("parse a sequent and print it in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewRun(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DecomposeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecomposeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("decompose").
		WithAliases("d", "de").
		WithSynopsis("decompose <sequent>").
		WithDescription("apply one decomposition rule and print the AND-OR tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return decomposeRun(cfg, cc, args)
		})
	cfg.Decompose = cmd
	return cmd
}

func ProveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProveConfig{MainConfig: mainCfg, Depth: search.DefaultMaxDepth}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("prove").
		WithAliases("pr").
		WithSynopsis("prove [-depth n] <sequent>").
		WithDescription("search for a proof of a sequent").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return proveRun(cfg, cc, args)
		})
	cfg.Prove = cmd
	return cmd
}

func ValidCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("valid").
		WithAliases("va").
		WithSynopsis("valid <sequent>").
		WithDescription("check propositional validity, printing a countermodel if invalid").
		WithRun(func(cc *cli.Context, args []string) error {
			return validRun(cfg, cc, args)
		})
	cfg.Valid = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff <sequent> <sequent>").
		WithDescription("diff two sequents member by member").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
