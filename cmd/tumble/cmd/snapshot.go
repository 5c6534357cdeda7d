// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"image"

	"cogentcore.org/tumble/base/iox/imagex"
	"cogentcore.org/tumble/config"
	"cogentcore.org/tumble/demos"
	"github.com/mitchellh/go-homedir"
)

// Snapshot simulates the demo and saves the last frame to
// [config.Config.Output], in the format given by its extension.
func Snapshot(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	in, err := simulate(c)
	if err != nil {
		return err
	}
	if err := imagex.Save(render(in, c.Size(), c.Supersample), out); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	fmt.Printf("saved %s: %s\n", out, in.Status())
	return nil
}

// render renders the demo at the given size, rendering at ss times
// the size and scaling down if ss > 1. Only the camera aspect and
// output size change, so the simulation is not affected.
func render(in *demos.Instance, size image.Point, ss int) *image.RGBA {
	if ss <= 1 {
		return in.Render()
	}
	in.Resize(size.Mul(ss))
	img := in.Render()
	in.Resize(size)
	return imagex.Resize(img, size)
}
