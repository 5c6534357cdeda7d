// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options passed to [Run]
// that control its behavior.
type Options struct {
	// AppName is the internal name of the app
	// (typically in kebab-case) (see also [Options.AppTitle])
	AppName string

	// AppTitle is the user-visible name of the app
	// (typically in Title Case) (see also [Options.AppName])
	AppTitle string

	// AppAbout is the description of the app
	AppAbout string

	// Fatal is whether to, if there is an error in [Run],
	// print it and fatally exit the program through [os.Exit]
	// with an exit code of 1.
	Fatal bool

	// PrintSuccess is whether to print a message indicating
	// that a command was successful after it is run.
	PrintSuccess bool

	// DefaultFiles are the default configuration file paths,
	// used when no -config flag is given. Missing default
	// files are not an error.
	DefaultFiles []string

	// IncludePaths is a list of file paths to try for finding config files
	// specified in the Includes field or via the command line -config args.
	IncludePaths []string
}

// DefaultOptions returns a new [Options] value
// with standard default values, based on the given
// app name and optional app about info.
func DefaultOptions(name string, about ...string) *Options {
	o := &Options{
		AppName:      name,
		AppTitle:     name,
		Fatal:        true,
		PrintSuccess: true,
		IncludePaths: []string{".", "configs"},
	}
	if len(about) > 0 {
		o.AppAbout = about[0]
	}
	return o
}
