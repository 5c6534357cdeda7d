// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/tumble/base/reflectx"
)

// ErrHelp is returned by [SetFromArgs] when -h or -help is passed.
var ErrHelp = errors.New("help requested")

// isConfigFlag returns whether the given flag name names the config file.
func isConfigFlag(name string) bool {
	return name == "config" || name == "cfg" || name == "c"
}

// splitFlag returns the name and value of a flag argument, which can
// start with one or two dashes and can contain an inline =value.
func splitFlag(arg string) (name, value string, hasValue bool) {
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, value, hasValue = strings.Cut(name, "=")
	return
}

// ConfigFiles returns the config files named with -config, -cfg or -c
// in the given args.
func ConfigFiles(args []string) []string {
	var files []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if len(a) < 2 || a[0] != '-' {
			continue
		}
		name, value, has := splitFlag(a)
		if !isConfigFlag(name) {
			continue
		}
		if !has && i+1 < len(args) {
			i++
			value = args[i]
		}
		if value != "" {
			files = append(files, value)
		}
	}
	return files
}

// SetFromArgs sets the fields of the given config object from the
// given command line args, returning the positional args that are
// left over. Flag names are the kebab-case field names; boolean
// flags need no value and can be negated with a no- prefix.
func SetFromArgs(cfg any, args []string, cmd string) ([]string, error) {
	fields, err := AddFields(cfg, cmd)
	if err != nil {
		return nil, err
	}
	var leftovers []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			leftovers = append(leftovers, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			leftovers = append(leftovers, a)
			continue
		}
		name, value, has := splitFlag(a)
		switch {
		case name == "h" || name == "help":
			return leftovers, ErrHelp
		case isConfigFlag(name):
			if !has {
				i++ // value consumed by ConfigFiles
			}
			continue
		}
		f := fields.Field(name)
		negate := false
		if f == nil {
			if nf := fields.Field(strings.TrimPrefix(name, "no-")); nf != nil && nf.isBool() && strings.HasPrefix(name, "no-") {
				f, negate = nf, true
			}
		}
		if f == nil {
			return leftovers, fmt.Errorf("flag %q not recognized", a)
		}
		if f.isBool() && !has {
			value = "true"
			if negate {
				value = "false"
			}
		} else if !has {
			if i+1 >= len(args) {
				return leftovers, fmt.Errorf("missing value for flag %q", a)
			}
			i++
			value = args[i]
		}
		if err := reflectx.SetFromString(f.Value.Interface(), value); err != nil {
			return leftovers, fmt.Errorf("error setting field %q from flag %q: %w", f.Name, a, err)
		}
	}
	return leftovers, nil
}
