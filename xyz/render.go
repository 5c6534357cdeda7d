// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/math32"
)

// renderTri is a screen-space polygon (a triangle, or a quad after
// near-plane clipping) with its flat shaded color.
type renderTri struct {
	pts   [4]math32.Vector2
	n     int
	depth float32
	clr   color.RGBA
}

// dirLight is a directional light in render form.
type dirLight struct {
	toLight math32.Vector3
	clr     math32.Vector3
}

// Render draws the scene from the camera into the scene image, which
// is returned. The image is reused by the next call to Render.
// Triangles are flat shaded by the ambient and directional lights and
// drawn back to front.
func (sc *Scene) Render() *image.RGBA {
	bounds := image.Rectangle{Max: sc.Size}
	if sc.img == nil || sc.img.Bounds() != bounds {
		sc.img = image.NewRGBA(bounds)
	}
	draw.Draw(sc.img, bounds, image.NewUniform(sc.Background), image.Point{}, draw.Src)

	cam := &sc.Camera
	cam.UpdateMatrix()
	var vp math32.Matrix4
	vp.MulMatrices(&cam.ProjectionMatrix, &cam.ViewMatrix)
	ambient, dirs := sc.lighting()

	sc.tris = sc.tris[:0]
	for _, sld := range sc.solids {
		sc.addSolidTris(sld, &vp, ambient, dirs)
	}
	slices.SortStableFunc(sc.tris, func(a, b renderTri) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for i := range sc.tris {
		sc.drawTri(&sc.tris[i])
	}
	return sc.img
}

// lighting returns the total ambient light and the directional lights.
func (sc *Scene) lighting() (math32.Vector3, []dirLight) {
	var ambient math32.Vector3
	var dirs []dirLight
	for _, lt := range sc.Lights {
		switch l := lt.(type) {
		case *AmbientLight:
			ambient.SetAdd(l.intensity())
		case *DirLight:
			if l.Pos.IsNil() {
				continue
			}
			dirs = append(dirs, dirLight{toLight: l.Pos.Normal(), clr: l.intensity()})
		}
	}
	return ambient, dirs
}

func (sc *Scene) addSolidTris(sld *Solid, vp *math32.Matrix4, ambient math32.Vector3, dirs []dirLight) {
	ms := sld.Mesh
	if ms == nil {
		return
	}
	sld.Pose.UpdateMatrix()
	camPos := sc.Camera.Pose.Pos
	near := sc.Camera.Near
	mat := &sld.Material
	for t := range ms.NumTriangles() {
		a, b, c := ms.Triangle(t)
		wa := a.MulMatrix4AsPoint(&sld.Pose.Matrix)
		wb := b.MulMatrix4AsPoint(&sld.Pose.Matrix)
		wc := c.MulMatrix4AsPoint(&sld.Pose.Matrix)
		norm := wb.Sub(wa).Cross(wc.Sub(wa))
		if norm.LengthSquared() == 0 {
			continue
		}
		norm.SetNormal()
		if mat.CullBack && norm.Dot(wa.Sub(camPos)) >= 0 {
			continue
		}
		clip := [3]math32.Vector4{
			math32.Vector4FromVector3(wa, 1).MulMatrix4(vp),
			math32.Vector4FromVector3(wb, 1).MulMatrix4(vp),
			math32.Vector4FromVector3(wc, 1).MulMatrix4(vp),
		}
		poly, np := clipNear(clip, near)
		if np < 3 {
			continue
		}
		rt := renderTri{n: np, depth: (clip[0].W + clip[1].W + clip[2].W) / 3}
		for i := range np {
			ndc := poly[i].PerspDiv()
			rt.pts[i] = math32.NDCToPixel(math32.Vec2(ndc.X, ndc.Y), sc.Size)
		}
		rt.clr = shade(mat, norm, ambient, dirs)
		sc.tris = append(sc.tris, rt)
	}
}

// shade returns the flat shaded color of a surface with the given normal.
func shade(mat *Material, norm, ambient math32.Vector3, dirs []dirLight) color.RGBA {
	light := ambient
	for _, dl := range dirs {
		if d := norm.Dot(dl.toLight); d > 0 {
			light.SetAdd(dl.clr.MulScalar(d))
		}
	}
	light.SetMulScalar(mat.Bright)
	clr := colors.Shade(mat.Color, light.X, light.Y, light.Z)
	if mat.Emissive.A > 0 {
		clr.R = uint8(min(int(clr.R)+int(mat.Emissive.R), 255))
		clr.G = uint8(min(int(clr.G)+int(mat.Emissive.G), 255))
		clr.B = uint8(min(int(clr.B)+int(mat.Emissive.B), 255))
	}
	return clr
}

// clipNear clips the triangle in clip coordinates to the region in
// front of the near plane, returning up to four vertices.
func clipNear(in [3]math32.Vector4, near float32) ([4]math32.Vector4, int) {
	var out [4]math32.Vector4
	n := 0
	for i := range 3 {
		cur, nxt := in[i], in[(i+1)%3]
		curIn, nxtIn := cur.W >= near, nxt.W >= near
		if curIn {
			out[n] = cur
			n++
		}
		if curIn != nxtIn {
			t := (near - cur.W) / (nxt.W - cur.W)
			out[n] = math32.Vec4(
				cur.X+(nxt.X-cur.X)*t,
				cur.Y+(nxt.Y-cur.Y)*t,
				cur.Z+(nxt.Z-cur.Z)*t,
				near)
			n++
		}
	}
	return out, n
}

// drawTri fills the polygon into the scene image, rasterizing only
// within its bounding rectangle.
func (sc *Scene) drawTri(rt *renderTri) {
	mn := rt.pts[0]
	mx := rt.pts[0]
	for _, p := range rt.pts[1:rt.n] {
		mn.X, mn.Y = min(mn.X, p.X), min(mn.Y, p.Y)
		mx.X, mx.Y = max(mx.X, p.X), max(mx.Y, p.Y)
	}
	r := image.Rect(int(math32.Floor(mn.X)), int(math32.Floor(mn.Y)),
		int(math32.Ceil(mx.X)), int(math32.Ceil(mx.Y))).Intersect(sc.img.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	z := &sc.raster
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(rt.pts[0].X-ox, rt.pts[0].Y-oy)
	for _, p := range rt.pts[1:rt.n] {
		z.LineTo(p.X-ox, p.Y-oy)
	}
	z.ClosePath()
	z.Draw(sc.img, r, image.NewUniform(rt.clr), image.Point{})
}
