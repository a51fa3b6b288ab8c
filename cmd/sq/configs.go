package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/prooflab/gentzen/render"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	Main *cli.Command
}

// colors picks the palette: -color forces it on, an unset flag defers
// to terminal detection on the output stream.
func (cfg *MainConfig) colors(w io.Writer) *render.Colors {
	if cfg.Color {
		return render.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return render.Mono()
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return render.Mono()
	}
	if isatty.IsTerminal(f.Fd()) {
		return render.NewColors()
	}
	return render.Mono()
}

func (cfg *MainConfig) renderer(w io.Writer) *render.Renderer {
	return render.New(cfg.colors(w))
}

type ParseConfig struct {
	*MainConfig

	Parse *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DecomposeConfig struct {
	*MainConfig

	Decompose *cli.Command
}

type ProveConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='max decomposition depth'"`

	Prove *cli.Command
}

type ValidConfig struct {
	*MainConfig

	Valid *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
