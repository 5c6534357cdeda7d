// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Rate float32 `default:"0.5"`
	Tags []string
}

type testConfig struct {
	Name    string        `default:"tumble"`
	Count   int           `default:"20"`
	On      bool          `default:"true"`
	Wait    time.Duration `default:"2s"`
	Sizes   []int         `default:"[1, 2, 3]"`
	Inner   inner
	private int
}

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))
	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestPointerValue(t *testing.T) {
	v := 1
	pv := PointerValue(reflect.ValueOf(v))
	assert.Equal(t, reflect.TypeFor[*int](), pv.Type())
	assert.Equal(t, 1, pv.Elem().Interface())
	assert.True(t, IsNil((*int)(nil)))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(&v))
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "tumble", cfg.Name)
	assert.Equal(t, 20, cfg.Count)
	assert.True(t, cfg.On)
	assert.Equal(t, 2*time.Second, cfg.Wait)
	assert.Equal(t, []int{1, 2, 3}, cfg.Sizes)
	assert.Equal(t, float32(0.5), cfg.Inner.Rate)
	assert.NoError(t, SetFromDefaultTags((*testConfig)(nil)))
	assert.Error(t, SetFromDefaultTags(new(int)))
}

func TestSetFromString(t *testing.T) {
	var f float64
	assert.NoError(t, SetFromString(&f, "1.25"))
	assert.Equal(t, 1.25, f)
	var u uint8
	assert.Error(t, SetFromString(&u, "300"))
	var ss []string
	assert.NoError(t, SetFromString(&ss, "a, 'b',c"))
	assert.Equal(t, []string{"a", "b", "c"}, ss)
	var b bool
	assert.Error(t, SetFromString(&b, "maybe"))
	assert.Error(t, SetFromString(b, "true"))
	var m map[string]int
	assert.Error(t, SetFromString(&m, "x"))
}

func TestWalkFields(t *testing.T) {
	var paths []string
	WalkFields(&testConfig{}, func(path string, field reflect.StructField, value reflect.Value) {
		paths = append(paths, path)
	})
	assert.Equal(t, []string{"Name", "Count", "On", "Wait", "Sizes", "Inner.Rate", "Inner.Tags"}, paths)
}
