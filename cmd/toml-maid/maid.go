package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/toml-maid/go-maid/config"
	"github.com/toml-maid/go-maid/dirscan"
	"github.com/toml-maid/go-maid/driver"
	"github.com/toml-maid/go-maid/format"
	"github.com/toml-maid/go-maid/libdiff"
	"github.com/toml-maid/go-maid/parse"
)

// Exit codes: 1 for usage, config, or parse errors; 2 for check-mode
// failures; 3 for filesystem errors.
const (
	exitError = 1
	exitCheck = 2
	exitIO    = 3
)

func maidMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			return sub.Run(cc, args[1:])
		}
	}
	return maid(cfg, cc, args)
}

func maid(cfg *MainConfig, cc *cli.Context, files []string) error {
	setupColor(cc)

	mcfg, err := maidConfig(cfg, cc)
	if err != nil {
		return err
	}

	if len(files) == 0 && len(cfg.Folders) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg.Folders = append(cfg.Folders, wd)
	}
	for _, folder := range cfg.Folders {
		found, err := dirscan.Files(folder, mcfg.Excludes)
		if err != nil {
			// a bad folder does not abort the others
			if !cfg.Silent {
				theLog.Warn("scanning folder", "folder", folder, "err", err)
			}
			continue
		}
		files = append(files, found...)
	}

	proc := driver.New(format.New(format.Options{
		Keys:       mcfg.Keys,
		InlineKeys: mcfg.InlineKeys,
		SortArrays: mcfg.SortArrays,
	}))

	var checkFailed, ioFailed, badFile bool
	err = proc.Run(context.Background(), files, cfg.Check, cfg.Jobs, func(res *driver.Result) {
		report(cfg, cc, res)
		switch {
		case errors.Is(res.Err, driver.ErrIO):
			ioFailed = true
		case res.Err != nil:
			badFile = true
		case res.Outcome == driver.CheckFailed:
			checkFailed = true
		}
	})
	if err != nil {
		return err
	}
	switch {
	case ioFailed:
		os.Exit(exitIO)
	case checkFailed:
		os.Exit(exitCheck)
	case badFile:
		os.Exit(exitError)
	}
	return nil
}

// maidConfig resolves the nearest configuration file; without one the
// defaults apply and a note is printed unless -silent.
func maidConfig(cfg *MainConfig, cc *cli.Context) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	path, ok := config.Find(wd)
	if !ok {
		if !cfg.Silent {
			fmt.Fprintln(cc.Out, color.YellowString(
				"No %q in this directory and its parents, using default config.\n", config.FileName))
		}
		return config.Default(), nil
	}
	return config.Load(path)
}

func report(cfg *MainConfig, cc *cli.Context, res *driver.Result) {
	path := displayPath(res.Path)
	if res.Err != nil {
		switch {
		case errors.Is(res.Err, driver.ErrIO):
			fmt.Fprintf(os.Stderr, "Error while reading file %q: %s\n", path, color.RedString("%v", res.Err))
		case errors.Is(res.Err, parse.ErrParse):
			fmt.Fprintf(os.Stderr, "Error while parsing file %q: %s\n", path, color.RedString("%v", res.Err))
		default:
			fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", path, res.Err)
		}
		return
	}
	switch res.Outcome {
	case driver.CheckFailed:
		fmt.Fprintf(os.Stderr, "Check fails : %s\n", color.RedString("%s", path))
		if cfg.Diff {
			fmt.Fprint(os.Stderr, libdiff.Lines(res.Before, res.After))
		}
	case driver.CheckPassed:
		if !cfg.Silent {
			fmt.Fprintf(cc.Out, "Check succeed: %s\n", color.GreenString("%s", path))
		}
	case driver.Overwritten:
		if !cfg.Silent {
			fmt.Fprintf(cc.Out, "Overwritten: %s\n", color.BlueString("%s", path))
		}
	case driver.Unchanged:
		if !cfg.Silent {
			fmt.Fprintf(cc.Out, "Unchanged: %s\n", color.GreenString("%s", path))
		}
	}
}

func displayPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
