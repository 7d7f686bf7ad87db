package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Check  bool `cli:"name=check aliases=c desc='only check formatting, fail if any file is not formatted'"`
	Silent bool `cli:"name=silent aliases=s desc='disable per-file messages'"`
	Diff   bool `cli:"name=diff desc='show a diff for files that fail the check'"`
	Jobs   int  `cli:"name=jobs desc='max files processed concurrently'"`

	Folders []string

	Main *cli.Command
}

func (cfg *MainConfig) folderOpt(cc *cli.Context, a string) (any, error) {
	cfg.Folders = append(cfg.Folders, a)
	return nil, nil
}

// setupColor disables coloring when the command output is not a terminal.
func setupColor(cc *cli.Context) {
	f, ok := cc.Out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
