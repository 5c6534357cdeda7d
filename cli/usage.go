// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"
)

// Usage returns the usage string for the given app and commands,
// for the given command name ("" for the root command).
// Flags are listed with their desc and default struct tags.
func Usage[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) string {
	var b strings.Builder
	if opts.AppAbout != "" {
		b.WriteString(opts.AppAbout + "\n\n")
	}
	if cmd == "" {
		fmt.Fprintf(&b, "%s %s %s\n\n", "Usage:", CmdColor(opts.AppName), CmdColor("[command] [flags]"))
	} else {
		fmt.Fprintf(&b, "%s %s %s\n\n", "Usage:", CmdColor(opts.AppName+" "+cmd), CmdColor("[flags]"))
	}
	if cmd == "" && len(cmds) > 0 {
		b.WriteString("The following commands are available:\n\n")
		for _, c := range cmds {
			b.WriteString(CmdColor(c.Name))
			if c.Root {
				b.WriteString(" " + HighlightColor("(default)"))
			}
			if c.Doc != "" {
				b.WriteString("\n    " + c.Doc)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	fields, _ := AddFields(cfg, cmd)
	b.WriteString("The following flags are available:\n\n")
	fmt.Fprintf(&b, "%s\n    show usage and exit\n", CmdColor("-help -h"))
	fmt.Fprintf(&b, "%s\n    config file(s) to load settings from\n", CmdColor("-config -cfg -c"))
	for _, f := range fields.List {
		flags := make([]string, len(f.Names))
		for i, n := range f.Names {
			flags[i] = "-" + n
		}
		fmt.Fprintf(&b, "%s %s", CmdColor(strings.Join(flags, " ")), f.Value.Elem().Type().String())
		if desc, ok := f.Field.Tag.Lookup("desc"); ok && desc != "" {
			b.WriteString("\n    " + desc)
		}
		if def, ok := f.Field.Tag.Lookup("default"); ok && def != "" {
			fmt.Fprintf(&b, " %s", HighlightColor("(default "+def+")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
