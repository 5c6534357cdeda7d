// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tumble runs rigid-body demo scenes headless, saves
// snapshots of them, or streams them to a browser.
package main

import (
	"cogentcore.org/tumble/cli"
	"cogentcore.org/tumble/cmd/tumble/cmd"
	"cogentcore.org/tumble/config"
)

func main() {
	opts := cli.DefaultOptions("tumble", "Tumble runs rigid-body demo scenes headless, saves snapshots of them, or streams them to a browser.")
	opts.DefaultFiles = []string{"tumble.toml"}
	opts.PrintSuccess = false
	cli.Run(opts, &config.Config{}, cmd.Cmds()...)
}
