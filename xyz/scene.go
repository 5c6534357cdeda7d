// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a small 3D scene graph: a [Scene] holds a [Camera],
// lights, meshes, and an ordered list of [Solid]s, and renders them
// into an image.
package xyz

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/tumble/colors"
	"golang.org/x/image/vector"
)

// DefaultSize is the default output image size of a [Scene].
var DefaultSize = image.Point{640, 480}

// Scene is the overall scenegraph containing solids, lights and
// the camera. It renders into its own image.
type Scene struct {

	// Name of the scene, used in logging.
	Name string

	// Background is the color the image is cleared to before rendering.
	Background color.RGBA

	// Camera determines view onto scene.
	Camera Camera

	// Lights are all the lights used in the scene, in order.
	Lights []Light

	// Meshes holds all the mesh data, by name.
	Meshes map[string]*Mesh

	// Size is the size of the rendered image in pixels.
	Size image.Point

	solids []*Solid
	byID   map[SolidID]*Solid
	nextID SolidID

	img    *image.RGBA
	raster vector.Rasterizer
	tris   []renderTri
}

// NewScene creates a new Scene with default camera, size and background.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Defaults()
	return sc
}

// Defaults sets default scene params (camera, size, bg = white)
func (sc *Scene) Defaults() {
	sc.Background = colors.White
	sc.Size = DefaultSize
	sc.Camera.Defaults()
	sc.Camera.SetAspect(float32(sc.Size.X) / float32(sc.Size.Y))
	sc.Meshes = make(map[string]*Mesh)
	sc.byID = make(map[SolidID]*Solid)
}

// Resize sets the output image size, and the camera aspect ratio to match.
// Nothing else in the scene changes. Non-positive sizes are ignored,
// returning false.
func (sc *Scene) Resize(size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	sc.Size = size
	sc.Camera.SetAspect(float32(size.X) / float32(size.Y))
	return true
}

// AddSolid adds the solid to the scene, assigning its ID.
func (sc *Scene) AddSolid(sld *Solid) SolidID {
	if sc.byID == nil {
		sc.byID = make(map[SolidID]*Solid)
	}
	sc.nextID++
	sld.ID = sc.nextID
	sld.Pose.Defaults()
	sc.solids = append(sc.solids, sld)
	sc.byID[sld.ID] = sld
	return sld.ID
}

// NewSolidIn creates a new solid with the mesh of the given name,
// adds it to the scene, and returns it.
func (sc *Scene) NewSolidIn(name, meshName string) (*Solid, error) {
	ms, err := sc.MeshByName(meshName)
	if err != nil {
		return nil, err
	}
	sld := NewSolid(name, ms)
	sc.AddSolid(sld)
	return sld, nil
}

// RemoveSolid removes the solid with the given ID, returning false
// if there is none.
func (sc *Scene) RemoveSolid(id SolidID) bool {
	sld, ok := sc.byID[id]
	if !ok {
		return false
	}
	delete(sc.byID, id)
	sc.solids = slices.DeleteFunc(sc.solids, func(s *Solid) bool { return s == sld })
	return true
}

// SolidByID returns the solid with the given ID, or nil.
func (sc *Scene) SolidByID(id SolidID) *Solid {
	return sc.byID[id]
}

// Solids returns the solids in the order they were added.
// The slice must not be modified.
func (sc *Scene) Solids() []*Solid {
	return sc.solids
}

// NumSolids returns the number of solids in the scene.
func (sc *Scene) NumSolids() int {
	return len(sc.solids)
}
