package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/prooflab/gentzen/parse"
	"github.com/prooflab/gentzen/proof"
	"github.com/prooflab/gentzen/sat"
	"github.com/prooflab/gentzen/search"
	"github.com/prooflab/gentzen/sequent"
	"github.com/prooflab/gentzen/textdiff"
)

// argText joins the positional arguments back into one text, so quoting
// the whole formula is optional: `sq parse A & B` works. With no
// arguments the text is read from stdin.
func argText(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(string(in))
	}
	if text == "" {
		return "", fmt.Errorf("%w: missing argument", cli.ErrUsage)
	}
	return text, nil
}

func parseRun(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := argText(args)
	if err != nil {
		return err
	}
	f, err := parse.Parse(text)
	if err != nil {
		return err
	}
	r := cfg.renderer(cc.Out)
	fmt.Fprintln(cc.Out, r.Formula(f))
	return nil
}

func viewRun(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := argText(args)
	if err != nil {
		return err
	}
	s, err := sequent.Parse(text)
	if err != nil {
		return err
	}
	r := cfg.renderer(cc.Out)
	fmt.Fprintln(cc.Out, r.Sequent(s))
	return nil
}

func decomposeRun(cfg *DecomposeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decompose.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := argText(args)
	if err != nil {
		return err
	}
	s, err := sequent.Parse(text)
	if err != nil {
		return err
	}
	b := proof.New().Decompose(s)
	r := cfg.renderer(cc.Out)
	if b == nil {
		fmt.Fprintln(cc.Out, "atomic")
		return nil
	}
	fmt.Fprint(cc.Out, r.Tree(b))
	return nil
}

func proveRun(cfg *ProveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prove.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := argText(args)
	if err != nil {
		return err
	}
	s, err := sequent.Parse(text)
	if err != nil {
		return err
	}
	res, err := search.Prove(s, search.MaxDepth(cfg.Depth))
	if errors.Is(err, search.ErrDepthExceeded) {
		fmt.Fprintf(cc.Out, "gave up: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	if res.Proved {
		fmt.Fprintf(cc.Out, "proved (%d expansions)\n", res.Expanded)
		return nil
	}
	fmt.Fprintf(cc.Out, "not proved (%d expansions)\n", res.Expanded)
	return nil
}

func validRun(cfg *ValidConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Valid.Parse(cc, args)
	if err != nil {
		return err
	}
	text, err := argText(args)
	if err != nil {
		return err
	}
	s, err := sequent.Parse(text)
	if err != nil {
		return err
	}
	ok, model, err := sat.Valid(s)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(cc.Out, "valid")
		return nil
	}
	r := cfg.renderer(cc.Out)
	fmt.Fprintln(cc.Out, "invalid, countermodel:")
	fmt.Fprint(cc.Out, r.Model(model))
	return nil
}

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two sequents", cli.ErrUsage)
	}
	from, err := sequent.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := sequent.Parse(args[1])
	if err != nil {
		return err
	}
	d := textdiff.Sequents(from, to)
	if !d.Changed() {
		return nil
	}
	r := cfg.renderer(cc.Out)
	for _, side := range []struct {
		name  string
		edits []textdiff.Edit
	}{{"antecedent", d.Ant}, {"consequent", d.Con}} {
		for _, e := range side.edits {
			if e.Op == textdiff.Equal {
				continue
			}
			fmt.Fprintf(cc.Out, "%s %s %s\n", e.Op, side.name, r.Formula(e.Formula))
		}
	}
	return nil
}
