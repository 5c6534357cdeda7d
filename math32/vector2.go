// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{X: float32(pt.X), Y: float32(pt.Y)}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns the vector sum of this vector with other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub returns this vector minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar returns this vector scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Cross returns the z component of the cross product of this vector with other,
// which is twice the signed area of the triangle they span.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// PixelToNDC converts a pixel position within a surface of the given
// size into normalized device coordinates (x, y in [-1, 1], y up).
func PixelToNDC(px, py float32, size image.Point) Vector2 {
	if size.X <= 0 || size.Y <= 0 {
		return Vector2{}
	}
	return Vec2((px/float32(size.X))*2-1, -(py/float32(size.Y))*2+1)
}

// NDCToPixel converts normalized device coordinates into a pixel
// position within a surface of the given size.
func NDCToPixel(ndc Vector2, size image.Point) Vector2 {
	return Vec2((ndc.X+1)*0.5*float32(size.X), (1-ndc.Y)*0.5*float32(size.Y))
}
