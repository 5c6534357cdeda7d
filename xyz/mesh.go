// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/tumble/math32"
)

// Mesh is an indexed triangle mesh used for rendering a [Solid].
// Triangles are wound counter-clockwise when viewed from outside.
type Mesh struct {

	// Name is the name of the mesh. Meshes are stored on the [Scene]
	// by name so this matters.
	Name string

	// Vertices are the vertex positions.
	Vertices []math32.Vector3

	// Indices are three vertex indexes per triangle.
	Indices []uint32

	// BBox is the bounding box of the vertices.
	BBox math32.Box3
}

// NewMesh returns a new mesh with the given vertices and triangle indexes,
// which are validated.
func NewMesh(name string, vertices []math32.Vector3, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("xyz.NewMesh %q: index count %d is not a multiple of 3", name, len(indices))
	}
	for _, ix := range indices {
		if int(ix) >= len(vertices) {
			return nil, fmt.Errorf("xyz.NewMesh %q: index %d out of range for %d vertices", name, ix, len(vertices))
		}
	}
	ms := &Mesh{Name: name, Vertices: vertices, Indices: indices}
	ms.ComputeBBox()
	return ms, nil
}

// ComputeBBox updates the bounding box from the vertices.
func (ms *Mesh) ComputeBBox() {
	ms.BBox.SetFromPoints(ms.Vertices)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (ms *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	return ms.Vertices[ms.Indices[3*i]], ms.Vertices[ms.Indices[3*i+1]], ms.Vertices[ms.Indices[3*i+2]]
}

// boxIndices are the triangles of a box with corners ordered as in boxVertices.
var boxIndices = []uint32{
	4, 5, 6, 4, 6, 7, // +Z
	1, 0, 3, 1, 3, 2, // -Z
	5, 1, 2, 5, 2, 6, // +X
	0, 4, 7, 0, 7, 3, // -X
	7, 6, 2, 7, 2, 3, // +Y
	0, 1, 5, 0, 5, 4, // -Y
}

func boxVertices(width, height, depth float32) []math32.Vector3 {
	x, y, z := width/2, height/2, depth/2
	return []math32.Vector3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
}

// NewBox adds a box mesh centered on the origin with the given size
// to the scene, and returns it.
func NewBox(sc *Scene, name string, width, height, depth float32) *Mesh {
	ms := &Mesh{Name: name, Vertices: boxVertices(width, height, depth), Indices: boxIndices}
	ms.ComputeBBox()
	sc.AddMesh(ms)
	return ms
}

////////	Scene code

// AddMesh adds given mesh to the scene, replacing any mesh of the same name.
func (sc *Scene) AddMesh(ms *Mesh) {
	if sc.Meshes == nil {
		sc.Meshes = make(map[string]*Mesh)
	}
	sc.Meshes[ms.Name] = ms
}

// MeshByName returns the mesh with the given name, or an error if not found.
func (sc *Scene) MeshByName(name string) (*Mesh, error) {
	ms, ok := sc.Meshes[name]
	if !ok {
		return nil, fmt.Errorf("xyz.Scene.MeshByName: mesh named %q not found", name)
	}
	return ms, nil
}
