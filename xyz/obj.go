// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"cogentcore.org/tumble/math32"
)

// DecodeOBJ reads a mesh from Wavefront OBJ data. Only vertex positions
// and faces are used; polygons are triangulated as fans. Texture and
// normal indexes in faces (v/vt/vn) are ignored.
func DecodeOBJ(r io.Reader, name string) (*Mesh, error) {
	var verts []math32.Vector3
	var idx []uint32
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("xyz.DecodeOBJ %q: line %d: vertex needs 3 coordinates", name, ln)
			}
			var v [3]float32
			for i := range 3 {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("xyz.DecodeOBJ %q: line %d: %w", name, ln, err)
				}
				v[i] = float32(f)
			}
			verts = append(verts, math32.Vec3(v[0], v[1], v[2]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("xyz.DecodeOBJ %q: line %d: face needs at least 3 vertices", name, ln)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, fd := range fields[1:] {
				vi, err := objIndex(fd, len(verts))
				if err != nil {
					return nil, fmt.Errorf("xyz.DecodeOBJ %q: line %d: %w", name, ln, err)
				}
				face = append(face, vi)
			}
			for i := 1; i+1 < len(face); i++ {
				idx = append(idx, face[0], face[i], face[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xyz.DecodeOBJ %q: %w", name, err)
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("xyz.DecodeOBJ %q: no faces", name)
	}
	return NewMesh(name, verts, idx)
}

// objIndex returns the zero-based vertex index of an OBJ face element,
// which is 1-based, or negative relative to the end.
func objIndex(elem string, nverts int) (uint32, error) {
	vs, _, _ := strings.Cut(elem, "/")
	i, err := strconv.Atoi(vs)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = nverts + i + 1
	}
	if i < 1 || i > nverts {
		return 0, fmt.Errorf("vertex index %s out of range for %d vertices", vs, nverts)
	}
	return uint32(i - 1), nil
}

// OpenOBJ loads the OBJ file at the given path in fsys, adding the mesh
// to the scene under the given name.
func (sc *Scene) OpenOBJ(fsys fs.FS, path, name string) (*Mesh, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := DecodeOBJ(f, name)
	if err != nil {
		return nil, err
	}
	sc.AddMesh(ms)
	return ms, nil
}
