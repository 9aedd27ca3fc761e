// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for configuration structs.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct
// (which must be passed as a pointer) from their `default:` struct
// field tags. Fields that already have a non-zero value are left
// alone, so it can be called after loading a config file. Embedded
// and nested structs are handled recursively.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a non-nil pointer, got %T", obj)
	}
	v := NonPointerValue(ov)
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, got %T", obj)
	}
	return setFromDefaultTags(v)
}

func setFromDefaultTags(v reflect.Value) error {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			if err := setFromDefaultTags(fv); err != nil {
				return err
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok || !fv.IsZero() {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: field %s: %w", f.Name, err)
		}
	}
	return nil
}

// SetFromString sets the given settable value from its string
// representation. Slices are given as space separated elements.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(interface{ UnmarshalText([]byte) error }); ok {
			return tu.UnmarshalText([]byte(s))
		}
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
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Slice:
		fs := strings.Fields(s)
		sv := reflect.MakeSlice(v.Type(), len(fs), len(fs))
		for i, e := range fs {
			if err := SetFromString(sv.Index(i), e); err != nil {
				return err
			}
		}
		v.Set(sv)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
