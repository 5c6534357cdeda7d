// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the tumble tool.
package config

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/tumble/base/logx"
	"cogentcore.org/tumble/colors"
)

// MaxSize is the largest allowed output width or height.
const MaxSize = 4096

// Config is the main config struct that contains all of the
// configuration options for the tumble tool.
type Config struct {

	// Includes are other config files to read before this one.
	Includes []string

	// the name of the demo to run
	Demo string `default:"stack" desc:"the name of the demo to run (see the list command)"`

	// the width of the rendered image in pixels
	Width int `default:"640" desc:"the width of the rendered image in pixels"`

	// the height of the rendered image in pixels
	Height int `default:"480" desc:"the height of the rendered image in pixels"`

	// the seed for random numbers
	Seed int64 `default:"1" desc:"the seed for random numbers, for reproducible dice"`

	// the frame rate of the simulation
	FPS int `default:"60" desc:"the number of frames per second"`

	// the sky color of the scene
	Background string `default:"#b5c9e8" desc:"the sky color of the scene, as a hex code or color name"`

	// physics settings
	Physics Physics

	// the number of frames to simulate in run and snapshot
	Frames int `cmd:"run,snapshot" default:"180" desc:"the number of frames to simulate"`

	// the number of pointer-down events at the image center
	Throws int `cmd:"run,snapshot" desc:"the number of pointer-down events at the image center, spread over the frames"`

	// the file to save the snapshot image to
	Output string `cmd:"snapshot" default:"tumble.png" desc:"the image file to save the snapshot to (png, jpg, gif, tif or bmp)"`

	// the supersampling factor of the snapshot
	Supersample int `cmd:"snapshot" default:"1" desc:"render the snapshot at this multiple of the size and scale it down, for smoother edges"`

	// the address to serve on
	Addr string `cmd:"serve" default:"localhost:8080" desc:"the address to serve the websocket frame host on"`

	// the image format of the frames streamed to clients
	Format string `cmd:"serve" default:"png" desc:"the image format of streamed frames (png or jpg)"`

	// whether to watch the config file and rebuild the demo on changes
	Watch bool `cmd:"serve" default:"true" desc:"whether to rebuild the demo when the config file changes"`

	// the config file being watched, set from the -config flag
	ConfigFile string `cmd:"serve" desc:"the config file to watch for changes"`

	// the maximum time to wait for connections to close on shutdown
	ShutdownTimeout time.Duration `cmd:"serve" default:"5s" desc:"the maximum time to wait for connections on shutdown"`

	// whether to print debug messages
	VeryVerbose bool `cli:"vv,very-verbose" desc:"whether to print debug messages"`

	// whether to print info messages
	Verbose bool `cli:"v,verbose" desc:"whether to print info messages"`

	// whether to only print errors
	Quiet bool `cli:"q,quiet" desc:"whether to only print errors"`
}

// Physics has the physics settings.
type Physics struct {

	// the maximum number of physics steps per frame
	MaxSubSteps int `default:"10" desc:"the maximum number of physics steps per frame; extra time is dropped"`

	// the physics step size in seconds
	FixedStep float32 `default:"0.016666668" desc:"the physics step size in seconds"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// Size returns the output image size.
func (c *Config) Size() image.Point {
	return image.Pt(c.Width, c.Height)
}

// FrameTime returns the time between frames of the frame host.
func (c *Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// LogLevel returns the user logging level from the verbosity flags.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// Validate returns an error for each invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxSize || c.Height > MaxSize {
		errs = append(errs, fmt.Errorf("size %dx%d must be within 1..%d", c.Width, c.Height, MaxSize))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if c.Frames < 0 || c.Throws < 0 {
		errs = append(errs, errors.New("frames and throws must not be negative"))
	}
	if c.Supersample < 1 || c.Supersample > 4 {
		errs = append(errs, fmt.Errorf("supersample %d must be within 1..4", c.Supersample))
	}
	if _, err := colors.FromString(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if c.Physics.FixedStep <= 0 {
		errs = append(errs, fmt.Errorf("physics fixed step %g must be positive", c.Physics.FixedStep))
	}
	return errors.Join(errs...)
}
