// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/tumble/base/iox/imagex"
	"cogentcore.org/tumble/cli"
	"cogentcore.org/tumble/config"
	"cogentcore.org/tumble/demos"
	"cogentcore.org/tumble/server"
	"github.com/jinzhu/copier"
)

// Serve streams the demo to browsers over a websocket until
// interrupted. If [config.Config.Watch] is set, the demo is rebuilt
// whenever the config file changes.
func Serve(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	if c.ConfigFile == "" {
		if fs := cli.ConfigFiles(os.Args[1:]); len(fs) > 0 {
			c.ConfigFile = fs[0]
		}
	}
	s, err := newServer(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if c.Watch && c.ConfigFile != "" {
		if err := s.Watch(ctx, c.ConfigFile); err != nil {
			return fmt.Errorf("watching config file: %w", err)
		}
	}
	fmt.Printf("serving %s on %s\n", cli.CmdColor(c.Demo), cli.CmdColor("http://"+c.Addr))
	return s.ListenAndServe(ctx)
}

// newServer returns a server for the demo of the config.
func newServer(c *config.Config) (*server.Server, error) {
	format, err := imagex.ExtToFormat(c.Format)
	if err != nil {
		return nil, err
	}
	if format != imagex.PNG && format != imagex.JPEG {
		return nil, fmt.Errorf("frame format must be png or jpg, not %q", c.Format)
	}
	s, err := server.New(c.Addr, c.FrameTime(), loader(c))
	if err != nil {
		return nil, err
	}
	s.Format = format
	s.ShutdownTimeout = c.ShutdownTimeout
	return s, nil
}

// loader returns a loader that builds the demo of the config. After
// the first call, it re-reads the config file, if any, on top of
// the config, so that changes to the file take effect on reload.
func loader(c *config.Config) server.Loader {
	first := true
	return func() (server.Scene, error) {
		lc := c
		if !first && c.ConfigFile != "" {
			nc := config.Config{}
			if err := copier.CopyWithOption(&nc, c, copier.Option{DeepCopy: true}); err != nil {
				return nil, err
			}
			nc.Includes = nil
			if err := cli.OpenWithIncludes(cli.DefaultOptions("tumble"), &nc, c.ConfigFile); err != nil {
				return nil, err
			}
			if err := nc.Validate(); err != nil {
				return nil, err
			}
			lc = &nc
		}
		first = false
		opts, err := options(lc)
		if err != nil {
			return nil, err
		}
		in, err := demos.Build(lc.Demo, opts)
		if err != nil {
			return nil, err
		}
		return in, nil
	}
}
