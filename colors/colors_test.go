// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	c, err := FromString("#b5c9e8")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xb5, 0xc9, 0xe8, 255}, c)
	assert.Equal(t, "#b5c9e8", AsHex(c))

	c, err = FromString("red")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = FromHex("fff")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	_, err = FromString("notacolor")
	assert.Error(t, err)
	_, err = FromString("#12")
	assert.Error(t, err)
}

func TestGrey(t *testing.T) {
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, Grey)
	assert.Equal(t, color.RGBA{84, 84, 84, 255}, DarkGrey)
	assert.Equal(t, White, FromGrey(2))
}

func TestShade(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, Shade(color.RGBA{200, 100, 50, 255}, 0.5, 0.5, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Shade(color.RGBA{200, 200, 200, 255}, 2, 2, 2))
}
