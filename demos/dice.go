// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/tumble/base/randx"
	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/xyz/physics"
	"cogentcore.org/tumble/xyz/physics/world"
)

//go:embed assets
var assets embed.FS

// Dice throw parameters.
const (
	DiceSpeed       = 12
	DiceSpin        = 15
	DiceMass        = 1
	DiceRestitution = 0.5
)

// dieFaces are the pips shown on each local face direction.
var dieFaces = []struct {
	dir  math32.Vector3
	pips int
}{
	{math32.Vector3Y, 1},
	{math32.Vector3Y.Negate(), 6},
	{math32.Vector3X, 3},
	{math32.Vector3X.Negate(), 4},
	{math32.Vector3Z, 2},
	{math32.Vector3Z.Negate(), 5},
}

// DieFace returns the pips on the face of a die with the given rotation
// that points most nearly up.
func DieFace(q math32.Quat) int {
	best := float32(-2)
	pips := 0
	for _, f := range dieFaces {
		if up := f.dir.MulQuat(q).Y; up > best {
			best = up
			pips = f.pips
		}
	}
	return pips
}

// dice is the state of the dice demo.
type dice struct {
	in   *Instance
	rand randx.Rand
	dice []world.Tracked
}

// NewDice builds the dice demo: each pointer press throws a die from
// the camera with a random spin, and the status reports the faces
// of the dice that have come to rest.
func NewDice(opts Options) (*Instance, error) {
	in := newInstance("dice", opts)
	if err := addGround(in.Spawner, 0); err != nil {
		return nil, err
	}
	if _, err := in.World.Scene.OpenOBJ(assets, "assets/die.obj", "die"); err != nil {
		return nil, err
	}
	d := &dice{in: in, rand: randx.NewSysRand(opts.Seed)}
	in.OnPointerDown = d.throw
	in.OnStatus = d.status
	return in, nil
}

func (d *dice) throw(px, py float32) error {
	sc := d.in.World.Scene
	ms, err := sc.MeshByName("die")
	if err != nil {
		return err
	}
	ray := sc.Camera.RayFromNDC(math32.PixelToNDC(px, py, sc.Size))
	tr, err := d.in.Spawner.Spawn(world.SpawnRequest{
		Name:        fmt.Sprintf("die-%d", len(d.dice)),
		Mesh:        ms,
		Scale:       math32.Vector3Scalar(0.5),
		Color:       colors.AlmostWhite,
		Mass:        DiceMass,
		Pos:         ray.Origin.Add(ray.Dir.MulScalar(2)),
		Quat:        randx.Quat(d.rand),
		LinVel:      ray.Dir.MulScalar(DiceSpeed),
		AngVel:      randx.UnitVector3(d.rand).MulScalar(randx.UniformMinMax(DiceSpin/2, DiceSpin, d.rand)),
		Restitution: DiceRestitution,
	})
	if err != nil {
		return err
	}
	d.dice = append(d.dice, tr)
	slog.Info("threw die", "name", tr.Solid.Name)
	return nil
}

// faces returns the up faces of the dice at rest, in throw order.
func (d *dice) faces() []int {
	var faces []int
	for _, tr := range d.dice {
		if tr.Body.ActivationState() != physics.IslandSleeping {
			continue
		}
		faces = append(faces, DieFace(tr.Body.WorldTransform().Rotation))
	}
	return faces
}

func (d *dice) status() string {
	faces := d.faces()
	strs := make([]string, len(faces))
	total := 0
	for i, f := range faces {
		strs[i] = fmt.Sprint(f)
		total += f
	}
	return fmt.Sprintf("%d dice thrown, at rest: [%s] total %d", len(d.dice), strings.Join(strs, " "), total)
}
