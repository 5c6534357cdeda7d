// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	durationType        = reflect.TypeFor[time.Duration]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// SetFromString sets the value pointed to by ptr from the given string.
// Slices of strings and numbers are comma separated.
func SetFromString(ptr any, s string) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("reflectx.SetFromString: expected non-nil pointer, got %T", ptr)
	}
	return setValue(v.Elem(), s)
}

func setValue(v reflect.Value, s string) error {
	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		s = strings.Trim(s, "[]")
		if s == "" {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			return nil
		}
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := setValue(sl.Index(i), strings.Trim(strings.TrimSpace(p), `"'`)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("reflectx.SetFromString: unsupported kind %v", v.Kind())
	}
	return nil
}

// SetFromDefaultTags sets the fields of the given struct pointer
// from their `default:` struct tags, recursing into embedded and
// nested structs.
func SetFromDefaultTags(obj any) error {
	if IsNil(obj) {
		return nil
	}
	val := NonPointerValue(reflect.ValueOf(obj))
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected struct, got %v", val.Kind())
	}
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && !ok {
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := setValue(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s.%s from %q: %w", typ.Name(), f.Name, def, err))
		}
	}
	return errors.Join(errs...)
}

// WalkFields calls fun for every exported non-struct field of the given
// struct pointer, with the dotted path of the field, recursing into
// nested structs.
func WalkFields(obj any, fun func(path string, field reflect.StructField, value reflect.Value)) {
	walkFields(obj, "", fun)
}

func walkFields(obj any, path string, fun func(path string, field reflect.StructField, value reflect.Value)) {
	if IsNil(obj) {
		return
	}
	val := NonPointerValue(reflect.ValueOf(obj))
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		name := f.Name
		if path != "" {
			name = path + "." + name
		}
		if NonPointerType(f.Type).Kind() == reflect.Struct && f.Type != durationType {
			walkFields(PointerValue(fv).Interface(), name, fun)
			continue
		}
		fun(name, f, fv)
	}
}
