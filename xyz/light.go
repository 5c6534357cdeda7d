// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/tumble/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// intensity returns the light color times lumens, as 0-1 per channel.
func (lb *LightBase) intensity() math32.Vector3 {
	if !lb.On {
		return math32.Vector3{}
	}
	return math32.Vec3(float32(lb.Color.R), float32(lb.Color.G), float32(lb.Color.B)).MulScalar(lb.Lumens / 255)
}

////////	Light types

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds Ambient to given scene, with given name, color, and lumens (0-1 normalized)
func NewAmbientLight(sc *Scene, name string, lumens float32, clr color.RGBA) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
// For rendering, the position is normalized to get the direction
// toward the light (i.e., absolute distance doesn't matter).
type DirLight struct {
	LightBase

	// position of direct light; assumed to point at the origin so this determines direction
	Pos math32.Vector3
}

// NewDirLight adds direct light to given scene, with given name, color, and lumens (0-1 normalized)
// By default it is located overhead and toward the default camera (0, 1, 1); change Pos otherwise
func NewDirLight(sc *Scene, name string, lumens float32, clr color.RGBA) *DirLight {
	lt := &DirLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	lt.Pos.Set(0, 1, 1)
	sc.AddLight(lt)
	return lt
}

////////	Scene code

// AddLight adds given light to lights, replacing any light of the same name.
// See NewX for convenience methods to add specific lights.
func (sc *Scene) AddLight(lt Light) {
	nm := lt.AsLightBase().Name
	for i, l := range sc.Lights {
		if l.AsLightBase().Name == nm {
			sc.Lights[i] = lt
			return
		}
	}
	sc.Lights = append(sc.Lights, lt)
}

// LightByName returns the light with the given name, or nil.
func (sc *Scene) LightByName(name string) Light {
	for _, l := range sc.Lights {
		if l.AsLightBase().Name == name {
			return l
		}
	}
	return nil
}
