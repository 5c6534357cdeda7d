// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/tumble/base/reflectx"
	"github.com/iancoleman/strcase"
)

// Field represents a struct field in a configuration object.
// It is passed around in flag parsing functions, but it should
// not typically be used by end-user code.
type Field struct {
	// Field is the reflect struct field object for this field
	Field reflect.StructField

	// Value is the reflect value of the settable pointer to this field
	Value reflect.Value

	// Name is the fully qualified, nested name of this field (eg: A.B.C).
	// It is as it appears in code, and is NOT transformed to kebab-case.
	Name string

	// Names contains all of the possible end-user flag names for this
	// field, in kebab-case. It defaults to the unqualified and qualified
	// names of the field, but custom names can be specified via
	// the cli struct tag.
	Names []string
}

// Fields is an ordered set of [Field]s with a lookup by flag name.
type Fields struct {
	List   []*Field
	byName map[string]*Field
}

// Field returns the field with the given flag name, or nil.
// The name can be in any case; it is converted to kebab-case.
func (fs *Fields) Field(name string) *Field {
	return fs.byName[strcase.ToKebab(name)]
}

// AddFields returns all of the configurable fields of the given object,
// skipping fields associated through a cmd struct tag with a command
// other than the given one. The Includes field is never a flag.
func AddFields(obj any, cmd string) (*Fields, error) {
	fs := &Fields{byName: map[string]*Field{}}
	var errs []string
	reflectx.WalkFields(obj, func(path string, f reflect.StructField, fv reflect.Value) {
		if f.Name == "Includes" {
			return
		}
		if ct, ok := f.Tag.Lookup("cmd"); ok && cmd != "" && !hasName(ct, cmd) {
			return
		}
		nf := &Field{Field: f, Value: reflectx.PointerValue(fv), Name: path}
		if tag, ok := f.Tag.Lookup("cli"); ok {
			for _, n := range strings.Split(tag, ",") {
				nf.Names = append(nf.Names, strcase.ToKebab(strings.TrimSpace(n)))
			}
		} else {
			nf.Names = append(nf.Names, strcase.ToKebab(f.Name))
			if path != f.Name {
				nf.Names = append(nf.Names, strcase.ToKebab(strings.ReplaceAll(path, ".", "")))
			}
		}
		for _, n := range nf.Names {
			if of, has := fs.byName[n]; has {
				errs = append(errs, fmt.Sprintf("fields %q and %q have the same flag name %q", of.Name, nf.Name, n))
				continue
			}
			fs.byName[n] = nf
		}
		fs.List = append(fs.List, nf)
	})
	if len(errs) > 0 {
		return fs, fmt.Errorf("programmer error: %s", strings.Join(errs, "; "))
	}
	return fs, nil
}

func hasName(list, name string) bool {
	for _, n := range strings.Split(list, ",") {
		if strings.TrimSpace(n) == name {
			return true
		}
	}
	return false
}

// isBool returns whether the field is a boolean flag,
// which does not need a value.
func (f *Field) isBool() bool {
	return f.Value.Elem().Kind() == reflect.Bool
}
