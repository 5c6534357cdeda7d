// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides named colors and conversions between
// color strings and [color.RGBA] values.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Standard scene colors.
var (
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Grey        = FromGrey(0.5)
	LightGrey   = FromGrey(0.67)
	DarkGrey    = FromGrey(0.33)
	AlmostWhite = FromGrey(0.9)
	Red         = color.RGBA{255, 0, 0, 255}
	Green       = color.RGBA{0, 255, 0, 255}
	Blue        = color.RGBA{0, 0, 255, 255}
	Transparent = color.RGBA{}
)

// FromGrey returns an opaque grey with the given 0-1 lightness.
func FromGrey(v float32) color.RGBA {
	g := uint8(clamp01(v)*255 + 0.5)
	return color.RGBA{g, g, g, 255}
}

// FromRGB returns an opaque color from the given 0-255 components.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromHex parses a color in #RRGGBB or #RGB form.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// FromString returns the color with the given hex code or standard
// color name, as used in CSS and SVG.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("colors.FromString: empty color")
	}
	if s[0] == '#' {
		return FromHex(s)
	}
	low := strings.ToLower(s)
	if low == "transparent" || low == "none" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[low]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: name not found %q", s)
}

// AsHex returns the color as a #rrggbb hex string.
func AsHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade returns the color with its RGB components multiplied by the
// given per-channel light intensity (each typically 0-1), keeping alpha.
func Shade(c color.RGBA, r, g, b float32) color.RGBA {
	return color.RGBA{
		R: scale8(c.R, r),
		G: scale8(c.G, g),
		B: scale8(c.B, b),
		A: c.A,
	}
}

func scale8(v uint8, f float32) uint8 {
	return uint8(min(float32(v)*max(f, 0), 255) + 0.5)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
