// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the tumble commands.
package cmd

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tumble/base/logx"
	"cogentcore.org/tumble/cli"
	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/config"
	"cogentcore.org/tumble/demos"
)

// Cmds returns the tumble commands, with run as the root command.
func Cmds() []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{Func: Run, Name: "run", Doc: "Run simulates the demo headless and prints its status.", Root: true},
		{Func: Snapshot, Name: "snapshot", Doc: "Snapshot simulates the demo and saves the last frame to an image file."},
		{Func: Serve, Name: "serve", Doc: "Serve streams the demo to browsers over a websocket."},
		{Func: List, Name: "list", Doc: "List prints the available demos."},
	}
}

// setup validates the config and installs the logger at the
// user level from the verbosity flags.
func setup(c *config.Config) error {
	logx.UserLevel = c.LogLevel()
	logx.SetDefaultLogger()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !demos.HasDemo(c.Demo) {
		return fmt.Errorf("unknown demo %q; have %v", c.Demo, demos.Names())
	}
	return nil
}

// options returns the demo options for the config.
func options(c *config.Config) (demos.Options, error) {
	bg, err := colors.FromString(c.Background)
	if err != nil {
		return demos.Options{}, err
	}
	return demos.Options{
		Size:        c.Size(),
		Seed:        c.Seed,
		MaxSubSteps: c.Physics.MaxSubSteps,
		FixedStep:   c.Physics.FixedStep,
		Background:  bg,
	}, nil
}

// simulate builds the demo and steps it for [config.Config.Frames]
// frames of 1/FPS seconds each, pressing the pointer at the image
// center [config.Config.Throws] times, evenly spread over the frames.
func simulate(c *config.Config) (*demos.Instance, error) {
	opts, err := options(c)
	if err != nil {
		return nil, err
	}
	in, err := demos.Build(c.Demo, opts)
	if err != nil {
		return nil, err
	}
	dt := float32(1) / float32(c.FPS)
	every := 0
	if c.Throws > 0 {
		every = max(1, c.Frames/c.Throws)
	}
	thrown := 0
	steps := 0
	for i := range c.Frames {
		if every > 0 && i%every == 0 && thrown < c.Throws {
			ok, err := in.PointerDown(float32(c.Width)/2, float32(c.Height)/2)
			if err != nil {
				return in, fmt.Errorf("frame %d: %w", i, err)
			}
			if !ok {
				slog.Warn("demo does not take pointer input", "demo", c.Demo)
				every = 0
			}
			thrown++
		}
		steps += in.Update(dt)
		if (i+1)%c.FPS == 0 {
			slog.Debug("simulated", "frame", i+1, "status", in.Status())
		}
	}
	slog.Info("simulation done", "frames", c.Frames, "steps", steps)
	return in, nil
}

// Run simulates the demo headless and prints its status.
func Run(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	in, err := simulate(c)
	if err != nil {
		return err
	}
	fmt.Println(in.Status())
	return nil
}

// List prints the available demos.
func List(c *config.Config) error {
	for _, e := range demos.Entries() {
		fmt.Printf("%s\t%s\n", cli.CmdColor(e.Name), e.Doc)
	}
	return nil
}
