// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates command line interfaces from configuration
// structs and command functions. Settings are layered in order:
// `default:` struct tags, TOML config files (with Includes), and
// then command line flags.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Run runs the app with the given options, configuration object
// and commands, using [os.Args] for its arguments. The first
// positional argument names the command; if there is none, the
// root command is run. If the command is "help", or -help is passed,
// the result of [Usage] is printed. If [Options.Fatal] is set, any
// error is printed and the program exits with code 1.
func Run[T any](opts *Options, cfg T, cmds ...*Cmd[T]) error {
	err := RunArgs(opts, cfg, os.Args[1:], cmds...)
	if err != nil && opts.Fatal {
		fmt.Println(ErrorColor("error: ") + err.Error())
		os.Exit(1)
	}
	return err
}

// RunArgs is like [Run], but uses the given args and never exits.
func RunArgs[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) error {
	leftovers, err := Config(opts, cfg, args)
	if errors.Is(err, ErrHelp) {
		fmt.Println(Usage(opts, cfg, "", cmds...))
		return nil
	}
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	cmd := ""
	if len(leftovers) > 0 {
		cmd = leftovers[0]
	}
	return RunCmd(opts, cfg, cmd, cmds...)
}

// RunCmd runs the command with the given name ("" for the root command).
func RunCmd[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) error {
	c := findCmd(cmds, cmd)
	if cmd == "" {
		c = rootCmd(cmds)
	}
	if c == nil {
		if cmd == "" || cmd == "help" {
			fmt.Println(Usage(opts, cfg, "", cmds...))
			return nil
		}
		return fmt.Errorf("command %q not found", cmd)
	}
	slog.Debug("running command", "command", c.Name)
	if err := c.Func(cfg); err != nil {
		return fmt.Errorf("error running command %q: %w", c.Name, err)
	}
	if opts.PrintSuccess {
		fmt.Println(SuccessColor("Successfully ran command " + c.Name))
	}
	return nil
}

// Config sets the given config object from its defaults, then from any
// config files, then from the given args. It returns the positional
// args that are left over. Config files named with -config are required
// to exist; [Options.DefaultFiles] are read only if present.
func Config(opts *Options, cfg any, args []string) ([]string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	files := ConfigFiles(args)
	if len(files) == 0 {
		for _, fn := range opts.DefaultFiles {
			if _, err := FindFileOnPaths(opts.IncludePaths, fn); err == nil {
				files = append(files, fn)
			}
		}
	}
	for _, fn := range files {
		if err := OpenWithIncludes(opts, cfg, fn); err != nil {
			return nil, fmt.Errorf("error opening config file: %w", err)
		}
	}
	return SetFromArgs(cfg, args, "")
}
