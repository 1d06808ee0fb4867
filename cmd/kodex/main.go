package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kodexeditor/kodex/internal/async"
	"github.com/kodexeditor/kodex/internal/config"
	"github.com/kodexeditor/kodex/internal/editor"
	"github.com/kodexeditor/kodex/internal/integration"
	"github.com/kodexeditor/kodex/internal/render"
	"github.com/kodexeditor/kodex/internal/syntax"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kodex: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("kodex", flag.ContinueOnError)
	noGit := fs.Bool("no-git", false, "disable Git integration")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	path := fs.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	surface := render.NewTcellSurface(screen)
	capability := syntax.ClassifyCapability(surface.Colors())

	var git integration.GitAdapter
	if cfg.Git.Enabled && !*noGit {
		dir := "."
		if path != "" {
			dir = path
		}
		git = integration.NewShellGit(dir)
	}

	linter := integration.NewShellLinter(nil, "", time.Duration(cfg.Shell.TimeoutSeconds)*time.Second)

	var askFunc async.AskFunc
	if adapter, err := integration.NewAIAdapterFor(cfg.Ai.DefaultProvider, cfg.ResolveAiConfig()); err == nil {
		askFunc = integration.AsAskFunc(adapter)
	}

	e := editor.New(cfg, surface, capability, git, linter, askFunc)
	if path != "" {
		if err := e.Open(path); err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
	} else {
		e.NewFile()
	}

	e.Run(screen)
	return nil
}
