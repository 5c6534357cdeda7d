// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
	assert.InDelta(t, vt.Z, va.Z, float64(tol))
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)
	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, float32(4-10+18), a.Dot(b))
	assert.Equal(t, Vec3(27, 6, -13), a.Cross(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.InDelta(t, 1, a.Normal().Length(), 1e-6)

	v := Vector3Scalar(1)
	v.SetDim(1, 5)
	assert.Equal(t, float32(5), v.Dim(1))
}

func TestQuatRotation(t *testing.T) {
	q := NewQuatAxisAngle(Vector3Y, DegToRad(90))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), Vector3X.MulQuat(q))
	TolAssertEqualVector(t, StandardTol, Vector3X, Vector3X.MulQuat(q).MulQuat(q.Inverse()))

	q2 := q.Mul(q)
	TolAssertEqualVector(t, StandardTol, Vec3(-1, 0, 0), Vector3X.MulQuat(q2))

	z := Quat{}
	z.Normalize()
	assert.True(t, z.IsIdentity())
	assert.True(t, q.IsEqualTol(NewQuat(-q.X, -q.Y, -q.Z, -q.W), StandardTol))
}

func TestMatrix4(t *testing.T) {
	pos := Vec3(1, 2, 3)
	q := NewQuatAxisAngle(Vector3Z, DegToRad(90))
	m := &Matrix4{}
	m.SetTransform(pos, q, Vector3Scalar(2))
	TolAssertEqualVector(t, StandardTol, Vec3(1, 4, 3), Vector3X.MulMatrix4AsPoint(m))

	inv := m.Inverse()
	TolAssertEqualVector(t, StandardTol, Vector3X, Vector3X.MulMatrix4AsPoint(m).MulMatrix4AsPoint(inv))

	id := m.Mul(inv)
	for i, v := range Identity4() {
		assert.InDelta(t, v, id[i], 1e-5)
	}

	sing := &Matrix4{}
	assert.ErrorIs(t, sing.SetInverse(&Matrix4{}), ErrSingular)

	var rq Quat
	rq.SetFromRotationMatrix(m.Mul(&Matrix4{0.5, 0, 0, 0, 0, 0.5, 0, 0, 0, 0, 0.5, 0, 0, 0, 0, 1}))
	assert.True(t, rq.IsEqualTol(q, 1e-4))
}

func TestPerspective(t *testing.T) {
	p := &Matrix4{}
	p.SetPerspective(90, 1, 1, 100)
	near := Vector4FromVector3(Vec3(0, 0, -1), 1).MulMatrix4(p).PerspDiv()
	far := Vector4FromVector3(Vec3(0, 0, -100), 1).MulMatrix4(p).PerspDiv()
	assert.InDelta(t, -1, near.Z, 1e-5)
	assert.InDelta(t, 1, far.Z, 1e-4)
	edge := Vector4FromVector3(Vec3(1, 1, -1), 1).MulMatrix4(p).PerspDiv()
	assert.InDelta(t, 1, edge.X, 1e-5)
	assert.InDelta(t, 1, edge.Y, 1e-5)
}

func TestLookAt(t *testing.T) {
	var q Quat
	q.SetFromRotationMatrix(NewLookAt(Vec3(0, 0, 10), Vector3Zero, Vector3Y))
	assert.True(t, q.IsEqualTol(QuatIdentity(), StandardTol))

	q.SetFromRotationMatrix(NewLookAt(Vec3(5, 5, 5), Vector3Zero, Vector3Y))
	fwd := Vec3(0, 0, -1).MulQuat(q)
	TolAssertEqualVector(t, 1e-4, Vec3(-1, -1, -1).Normal(), fwd)
}

func TestBox3(t *testing.T) {
	b := B3FromHalfExtents(Vec3(1, 2, 3))
	assert.Equal(t, Vec3(2, 4, 6), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0.5, -1.5, 2.9)))
	assert.False(t, b.ContainsPoint(Vec3(1.5, 0, 0)))
	assert.True(t, B3Empty().IsEmpty())

	r := b.MulQuat(NewQuatAxisAngle(Vector3Z, DegToRad(90)))
	TolAssertEqualVector(t, StandardTol, Vec3(4, 2, 6), r.Size())

	assert.True(t, b.IntersectsBox(b.Translate(Vec3(1.5, 0, 0))))
	assert.False(t, b.IntersectsBox(b.Translate(Vec3(2.5, 0, 0))))
}

func TestRayAt(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -1))
	assert.Equal(t, Vec3(0, 0, 7), ray.At(3))
}

func TestPixelToNDC(t *testing.T) {
	sz := image.Pt(200, 100)
	assert.Equal(t, Vec2(-1, 1), PixelToNDC(0, 0, sz))
	assert.Equal(t, Vec2(0, 0), PixelToNDC(100, 50, sz))
	assert.Equal(t, Vec2(1, -1), PixelToNDC(200, 100, sz))
	assert.Equal(t, Vec2(150, 25), NDCToPixel(Vec2(0.5, 0.5), sz))
	assert.Equal(t, Vector2{}, PixelToNDC(1, 1, image.Point{}))
}
