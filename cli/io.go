// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"cogentcore.org/tumble/base/reflectx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Includer is implemented by config objects that have an Includes
// field listing other config files to read before the current one.
type Includer interface {
	// IncludesPtr returns a pointer to the Includes []string field containing file(s) to include
	// before processing the current config file.
	IncludesPtr() *[]string
}

// maxIncludeDepth bounds include chains, which catches include cycles.
const maxIncludeDepth = 10

// FindFileOnPaths returns the first existing file with the given name,
// trying it as given and then relative to each of the given paths.
// A leading ~ is expanded to the home directory.
func FindFileOnPaths(paths []string, file string) (string, error) {
	file, err := homedir.Expand(file)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(file); err == nil || filepath.IsAbs(file) {
		return file, err
	}
	for _, p := range paths {
		fn := filepath.Join(p, file)
		if _, err := os.Stat(fn); err == nil {
			return fn, nil
		}
	}
	return "", fmt.Errorf("file %q not found on paths %v: %w", file, paths, fs.ErrNotExist)
}

// OpenTOML reads the given TOML file into cfg. Only the keys present in
// the file are set, so that files can be layered on top of each other.
// Keys that do not match a config field are an error.
func OpenTOML(cfg any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var sm *toml.StrictMissingError
		if errors.As(err, &sm) {
			return fmt.Errorf("%s: %s", filename, sm.String())
		}
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// SaveTOML writes cfg as TOML to the given file.
func SaveTOML(cfg any, filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// OpenWithIncludes reads the config struct from the given config file,
// looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// It is equivalent to [OpenTOML] if there are no Includes. It returns an error if
// any of the include files cannot be found on [Options.IncludePaths].
func OpenWithIncludes(opts *Options, cfg any, file string) error {
	fn, err := FindFileOnPaths(opts.IncludePaths, file)
	if err != nil {
		return err
	}
	if err := OpenTOML(cfg, fn); err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := IncludeStack(opts, incfg)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		ifn, err := FindFileOnPaths(opts.IncludePaths, incs[i])
		if err != nil {
			return err
		}
		if err := OpenTOML(cfg, ifn); err != nil {
			return err
		}
	}
	// reopen original so that it overrides its includes
	if err := OpenTOML(cfg, fn); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}

// IncludeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// It does not alter cfg.
func IncludeStack(opts *Options, cfg Includer) ([]string, error) {
	clone := reflect.New(reflectx.NonPointerType(reflect.TypeOf(cfg))).Interface().(Includer)
	*clone.IncludesPtr() = *cfg.IncludesPtr()
	return includeStack(opts, clone, nil, 0)
}

func includeStack(opts *Options, clone Includer, includes []string, depth int) ([]string, error) {
	incs := *clone.IncludesPtr()
	if len(incs) == 0 {
		return includes, nil
	}
	if depth >= maxIncludeDepth {
		return includes, fmt.Errorf("includes nested more than %d deep: %v", maxIncludeDepth, incs)
	}
	for i := len(incs) - 1; i >= 0; i-- {
		includes = append(includes, incs[i]) // reverse order so later overwrite earlier
	}
	var errs []error
	for _, inc := range incs {
		*clone.IncludesPtr() = nil
		fn, err := FindFileOnPaths(opts.IncludePaths, inc)
		if err == nil {
			err = OpenTOML(clone, fn)
		}
		if err == nil {
			includes, err = includeStack(opts, clone, includes, depth+1)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return includes, errors.Join(errs...)
}
