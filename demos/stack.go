// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"log/slog"

	"cogentcore.org/tumble/math32"
)

// StackFriction is the friction of all bodies in the stack demo.
const StackFriction = 100

// NewStack builds the stack demo: 33 cubes in a leaning column above
// the ground, and a pointer press throws a heavy cube from the camera.
func NewStack(opts Options) (*Instance, error) {
	in := newInstance("stack", opts)
	if err := addGround(in.Spawner, StackFriction); err != nil {
		return nil, err
	}
	err := addCubes(in.Spawner, 33, 0.5, 10, StackFriction, func(i int) math32.Vector3 {
		fi := float32(i)
		return math32.Vec3(0.1*fi, fi, 0.1*fi)
	})
	if err != nil {
		return nil, err
	}
	in.Spawner.ThrowFriction = StackFriction
	in.OnPointerDown = func(px, py float32) error {
		tr, err := in.Spawner.Throw(px, py)
		if err != nil {
			return err
		}
		slog.Info("threw cube", "name", tr.Solid.Name, "pos", tr.Solid.Pose.Pos, "vel", tr.Body.LinearVelocity())
		return nil
	}
	return in, nil
}
