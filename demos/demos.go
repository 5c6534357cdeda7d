// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demos provides the demo scenes: each builds a scene and
// physics world and handles pointer input.
package demos

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"sort"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/xyz"
	"cogentcore.org/tumble/xyz/physics"
	"cogentcore.org/tumble/xyz/physics/world"
)

// Options configure how a demo is built.
type Options struct {

	// Size of the rendered image.
	Size image.Point

	// Seed for the random numbers of demos that use them.
	Seed int64

	// MaxSubSteps is the maximum number of physics steps per frame.
	MaxSubSteps int

	// FixedStep is the physics step size in seconds.
	FixedStep float32

	// Background is the sky color; zero means [SceneBackground].
	Background color.RGBA
}

// Instance is a built, running demo.
type Instance struct {

	// Name of the demo.
	Name string

	// World holds the scene, physics and their pairing.
	World *world.World

	// Spawner creates objects in the world.
	Spawner *world.Spawner

	// Controls orbit the camera from pointer drags and wheel steps.
	Controls *xyz.OrbitControls

	// OnPointerDown handles a pointer press at the given pixel, if set.
	OnPointerDown func(px, py float32) error

	// OnStatus returns a short description of the demo state, if set.
	OnStatus func() string
}

// Builder builds a demo instance.
type Builder func(opts Options) (*Instance, error)

// Entry is a registered demo.
type Entry struct {
	Name  string
	Doc   string
	Build Builder
}

var registry = map[string]Entry{}

// Register adds a demo to the registry, replacing any of the same name.
func Register(name, doc string, build Builder) {
	registry[name] = Entry{Name: name, Doc: doc, Build: build}
}

func init() {
	Register("spin", "rotating cubes without physics", NewSpin)
	Register("tower", "a tower of 20 cubes falling onto the ground", NewTower)
	Register("stack", "33 cubes falling onto the ground; click to throw cubes", NewStack)
	Register("dice", "click to throw dice; reports the faces that land up", NewDice)
}

// Names returns the names of all registered demos, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for nm := range registry {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}

// Entries returns all registered demos, sorted by name.
func Entries() []Entry {
	es := make([]Entry, 0, len(registry))
	for _, nm := range Names() {
		es = append(es, registry[nm])
	}
	return es
}

// Build builds the demo with the given name.
func Build(name string, opts Options) (*Instance, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("demos.Build: unknown demo %q, have %v", name, Names())
	}
	in, err := e.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("demos.Build %q: %w", name, err)
	}
	slog.Info("built demo", "demo", name, "solids", in.World.Scene.NumSolids(), "bodies", in.World.Physics.NumBodies())
	return in, nil
}

// Update moves the camera by any pending orbit input and advances
// the demo by dt seconds, returning the physics steps taken.
func (in *Instance) Update(dt float32) int {
	in.Controls.Update()
	return in.World.Update(dt)
}

// Orbit rotates the camera around its target for a pointer drag of
// dx, dy pixels. The rotation is applied over the following updates.
func (in *Instance) Orbit(dx, dy float32) {
	in.Controls.Drag(dx, dy, in.World.Scene.Size.Y)
}

// Zoom moves the camera toward (negative steps) or away from the
// target by the given number of wheel steps on the next update.
func (in *Instance) Zoom(steps float32) {
	in.Controls.Wheel(steps)
}

// Resize changes the output image size.
func (in *Instance) Resize(size image.Point) bool {
	return in.World.Resize(size)
}

// Render renders the scene.
func (in *Instance) Render() *image.RGBA {
	return in.World.Scene.Render()
}

// PointerDown handles a pointer press at the given pixel. It returns
// false if the demo does not take pointer input.
func (in *Instance) PointerDown(px, py float32) (bool, error) {
	if in.OnPointerDown == nil {
		return false, nil
	}
	return true, in.OnPointerDown(px, py)
}

// Status returns a short description of the demo state.
func (in *Instance) Status() string {
	st := fmt.Sprintf("%s: %d solids, %d bodies, t=%.2fs", in.Name,
		in.World.Scene.NumSolids(), in.World.Physics.NumBodies(), in.World.Physics.Time())
	if in.OnStatus != nil {
		st += ", " + in.OnStatus()
	}
	return st
}

// SceneBackground is the sky color of the demo scenes.
var SceneBackground = errors.Must1(colors.FromHex("#b5c9e8"))

// newInstance returns an instance with the standard scene: camera at
// (5, 5, 5) orbiting the origin, dark grey ambient light and a white
// sun at (-10, 20, 10).
func newInstance(name string, opts Options) *Instance {
	sc := xyz.NewScene(name)
	sc.Background = SceneBackground
	if opts.Background != (color.RGBA{}) {
		sc.Background = opts.Background
	}
	sc.Camera.Pose.Pos.Set(5, 5, 5)
	controls := xyz.NewOrbitControls(&sc.Camera, math32.Vector3{})
	if !sc.Resize(opts.Size) {
		sc.Resize(xyz.DefaultSize)
	}
	xyz.NewAmbientLight(sc, "ambient", 1, colors.DarkGrey)
	sun := xyz.NewDirLight(sc, "sun", 1, colors.White)
	sun.Pos.Set(-10, 20, 10)

	w := world.NewWorld(sc, physics.NewWorld())
	if opts.MaxSubSteps > 0 {
		w.MaxSubSteps = opts.MaxSubSteps
	}
	if opts.FixedStep > 0 {
		w.FixedTimeStep = opts.FixedStep
	}
	return &Instance{Name: name, World: w, Spawner: world.NewSpawner(w), Controls: controls}
}

// addGround adds the static 40 x 1 x 40 ground slab below the origin.
func addGround(sp *world.Spawner, friction float32) error {
	_, err := sp.Spawn(world.SpawnRequest{
		Name:     "ground",
		Size:     math32.Vec3(40, 1, 40),
		Color:    colors.LightGrey,
		Pos:      math32.Vec3(0, -1, 0),
		Friction: friction,
	})
	return err
}

// cubeTilt is the rotation of the falling cubes, normalized on use.
var cubeTilt = math32.NewQuat(10, 5, 0, 1)

// addCubes adds n red dynamic cubes of the given size and mass at
// the positions returned by pos.
func addCubes(sp *world.Spawner, n int, size, mass, friction float32, pos func(i int) math32.Vector3) error {
	for i := range n {
		_, err := sp.Spawn(world.SpawnRequest{
			Name:       fmt.Sprintf("cube-%d", i),
			Size:       math32.Vector3Scalar(size),
			Color:      colors.Red,
			Mass:       mass,
			Pos:        pos(i),
			Quat:       cubeTilt,
			Friction:   friction,
			KeepActive: true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// HasDemo returns whether a demo of the given name is registered.
func HasDemo(name string) bool {
	return slices.Contains(Names(), name)
}
