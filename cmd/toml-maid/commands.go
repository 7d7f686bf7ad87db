package main

import (
	"runtime"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Jobs: runtime.NumCPU()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "folder",
		Description: "scan a folder recursively for .toml files (repeatable)",
		Type:        cli.NamedFuncOpt(cfg.folderOpt, "(dir)"),
	})

	return cli.NewCommandAt(&cfg.Main, "toml-maid").
		WithSynopsis("toml-maid [opts] [files]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return maidMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg))
}

const mainDescription = `toml-maid formats TOML files: keys are sorted by the priority
lists of the nearest toml-maid.toml, blank-line separated groups sort
independently, and comments stay with their keys.

With no files and no -folder, the current directory is scanned.`

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump parsed documents with their decorations as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
