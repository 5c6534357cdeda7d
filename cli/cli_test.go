// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRender struct {
	Width  int `default:"640" desc:"output width"`
	Height int `default:"480"`
}

type testConfig struct {
	Includes    []string
	Demo        string  `default:"tower" desc:"demo to run"`
	Frames      int     `default:"120"`
	Rate        float32 `default:"0.5"`
	Verbose     bool    `cli:"v,verbose"`
	Output      string  `cmd:"snapshot"`
	MaxSubSteps int     `default:"10"`
	Render      testRender
}

func (c *testConfig) IncludesPtr() *[]string { return &c.Includes }

func TestSetFromArgs(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	left, err := SetFromArgs(cfg, []string{"snapshot", "-demo", "stack", "--frames=30", "-v", "-max-sub-steps", "3", "-render-width", "100", "-height=50", "extra"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshot", "extra"}, left)
	assert.Equal(t, "stack", cfg.Demo)
	assert.Equal(t, 30, cfg.Frames)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 3, cfg.MaxSubSteps)
	assert.Equal(t, 100, cfg.Render.Width)
	assert.Equal(t, 50, cfg.Render.Height)
	assert.Equal(t, float32(0.5), cfg.Rate)

	_, err = SetFromArgs(cfg, []string{"-no-verbose"}, "")
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)

	_, err = SetFromArgs(cfg, []string{"-bogus"}, "")
	assert.Error(t, err)
	_, err = SetFromArgs(cfg, []string{"-frames"}, "")
	assert.Error(t, err)
	_, err = SetFromArgs(cfg, []string{"-frames", "many"}, "")
	assert.Error(t, err)
	_, err = SetFromArgs(cfg, []string{"-h"}, "")
	assert.ErrorIs(t, err, ErrHelp)

	left, err = SetFromArgs(cfg, []string{"-config", "x.toml", "run", "--", "-frames"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "-frames"}, left)
}

func TestAddFields(t *testing.T) {
	fs, err := AddFields(&testConfig{}, "run")
	require.NoError(t, err)
	assert.Nil(t, fs.Field("output"))
	assert.NotNil(t, fs.Field("MaxSubSteps"))
	assert.Same(t, fs.Field("v"), fs.Field("verbose"))
	fs, err = AddFields(&testConfig{}, "snapshot")
	require.NoError(t, err)
	assert.NotNil(t, fs.Field("output"))

	type dup struct {
		A int `cli:"x"`
		B int `cli:"x"`
	}
	_, err = AddFields(&dup{}, "")
	assert.Error(t, err)
}

func TestConfigFiles(t *testing.T) {
	assert.Equal(t, []string{"a.toml", "b.toml"}, ConfigFiles([]string{"-config", "a.toml", "run", "--cfg=b.toml", "--", "-c", "c.toml"}))
}

func writeFile(t *testing.T, dir, name, content string) string {
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestOpenWithIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.toml", "Demo = \"spin\"\nFrames = 10\nRate = 2.0\n")
	writeFile(t, dir, "mid.toml", "Includes = [\"base.toml\"]\nFrames = 20\n")
	writeFile(t, dir, "top.toml", "Includes = [\"mid.toml\"]\nDemo = \"dice\"\n[Render]\nWidth = 320\n")
	opts := DefaultOptions("test")
	opts.IncludePaths = []string{dir}

	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, OpenWithIncludes(opts, cfg, "top.toml"))
	assert.Equal(t, "dice", cfg.Demo)
	assert.Equal(t, 20, cfg.Frames)
	assert.Equal(t, float32(2), cfg.Rate)
	assert.Equal(t, 320, cfg.Render.Width)
	assert.Equal(t, 480, cfg.Render.Height)
	assert.Equal(t, []string{"mid.toml", "base.toml"}, cfg.Includes)

	writeFile(t, dir, "bad.toml", "Nope = 1\n")
	assert.Error(t, OpenWithIncludes(opts, &testConfig{}, "bad.toml"))
	writeFile(t, dir, "missing.toml", "Includes = [\"none.toml\"]\n")
	assert.Error(t, OpenWithIncludes(opts, &testConfig{}, "missing.toml"))
	writeFile(t, dir, "loop.toml", "Includes = [\"loop.toml\"]\n")
	assert.Error(t, OpenWithIncludes(opts, &testConfig{}, "loop.toml"))
	_, err := FindFileOnPaths(opts.IncludePaths, "none.toml")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.toml")
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	cfg.Demo = "stack"
	cfg.Includes = []string{"base.toml"}
	require.NoError(t, SaveTOML(cfg, fn))
	got := &testConfig{}
	require.NoError(t, OpenTOML(got, fn))
	assert.Equal(t, cfg, got)
}

func TestRunArgs(t *testing.T) {
	var ran []string
	run := &Cmd[*testConfig]{Name: "run", Root: true, Func: func(c *testConfig) error {
		ran = append(ran, "run:"+c.Demo)
		return nil
	}}
	fail := &Cmd[*testConfig]{Name: "fail", Func: func(c *testConfig) error {
		return errors.New("boom")
	}}
	opts := DefaultOptions("test")
	opts.PrintSuccess = false
	cmds := AddCmd(nil, run)
	cmds = AddCmd(cmds, fail)
	cmds = AddCmd(cmds, &Cmd[*testConfig]{Name: "run"})
	assert.Len(t, cmds, 2)

	require.NoError(t, RunArgs(opts, &testConfig{}, []string{"-demo", "stack"}, cmds...))
	require.NoError(t, RunArgs(opts, &testConfig{}, []string{"run"}, cmds...))
	assert.Equal(t, []string{"run:stack", "run:tower"}, ran)
	assert.ErrorContains(t, RunArgs(opts, &testConfig{}, []string{"fail"}, cmds...), "boom")
	assert.Error(t, RunArgs(opts, &testConfig{}, []string{"nope"}, cmds...))
	assert.NoError(t, RunArgs(opts, &testConfig{}, []string{"help"}, cmds...))
	assert.NoError(t, RunArgs(opts, &testConfig{}, []string{"-help"}, cmds...))
}

func exampleCmd(c *testConfig) error { return nil }

func TestCmdFromFunc(t *testing.T) {
	c := CmdFromFunc(exampleCmd)
	assert.Equal(t, "example-cmd", c.Name)
	root := &Cmd[*testConfig]{Name: "a", Root: true}
	cmds := AddCmd(nil, root)
	other := &Cmd[*testConfig]{Name: "b", Root: true}
	cmds = AddCmd(cmds, other)
	assert.False(t, other.Root)
	assert.Same(t, root, rootCmd(cmds))
}

func TestUsage(t *testing.T) {
	cmds := []*Cmd[*testConfig]{{Name: "run", Doc: "runs it", Root: true}}
	u := Usage(DefaultOptions("test", "about test"), &testConfig{}, "", cmds...)
	assert.Contains(t, u, "about test")
	assert.Contains(t, u, "runs it")
	assert.Contains(t, u, "demo to run")
	assert.Contains(t, u, "-max-sub-steps")
	assert.Contains(t, u, "default 640")
}
