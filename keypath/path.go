// SPDX-License-Identifier: MIT

package keypath

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DefaultSep separates keys when no separator is given.
const DefaultSep = "."

// Getter reads the value at a fixed path. ok is false when any level is
// missing or not addressable by its key.
type Getter func(obj any) (v any, ok bool)

// Setter writes v at a fixed path and reports whether the write happened.
type Setter func(obj any, v any) bool

// Path is a parsed key path.
type Path struct {
	keys []string
	sep  string
}

// Parse splits path on sep ("" selects DefaultSep).
func Parse(path, sep string) (Path, error) {
	if path == "" {
		return Path{}, fmt.Errorf("Parse: %w", ErrEmptyPath)
	}
	if sep == "" {
		sep = DefaultSep
	}

	return Path{keys: strings.Split(path, sep), sep: sep}, nil
}

// Accessors parses path once and returns a getter/setter pair over it.
func Accessors(path, sep string) (Getter, Setter, error) {
	p, err := Parse(path, sep)
	if err != nil {
		return nil, nil, err
	}

	return p.Get, p.Set, nil
}

// Keys returns a copy of the parsed keys.
func (p Path) Keys() []string { return append([]string(nil), p.keys...) }

// String joins the keys back with the original separator.
func (p Path) String() string { return strings.Join(p.keys, p.sep) }

// Get returns the value at p inside obj. A present nil leaf yields (nil, true).
func (p Path) Get(obj any) (any, bool) {
	cur := reflect.ValueOf(obj)
	for _, key := range p.keys {
		next, ok := child(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	cur = unwrapInterface(cur)
	if !cur.IsValid() {
		return nil, true
	}
	if !cur.CanInterface() {
		return nil, false
	}

	return cur.Interface(), true
}

// Set writes v at p inside obj. Intermediate levels must already exist.
func (p Path) Set(obj any, v any) bool {
	if len(p.keys) == 0 {
		return false
	}
	cur := reflect.ValueOf(obj)
	last := len(p.keys) - 1
	for _, key := range p.keys[:last] {
		next, ok := child(cur, key)
		if !ok {
			return false
		}
		cur = next
	}

	return assign(cur, p.keys[last], v)
}

// deref follows pointers and interfaces until a concrete non-pointer value.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	return v, v.IsValid()
}

// unwrapInterface strips interface boxes but keeps pointers intact, so a
// *float64 leaf is reported as a pointer, not as its target.
func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

// child resolves one key against container v.
func child(v reflect.Value, key string) (reflect.Value, bool) {
	c, ok := deref(v)
	if !ok {
		return reflect.Value{}, false
	}
	switch c.Kind() {
	case reflect.Map:
		k, ok := mapKey(c.Type(), key)
		if !ok {
			return reflect.Value{}, false
		}
		e := c.MapIndex(k)
		return e, e.IsValid()
	case reflect.Slice, reflect.Array:
		i, ok := index(c, key)
		if !ok {
			return reflect.Value{}, false
		}
		return c.Index(i), true
	case reflect.Struct:
		f, ok := c.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return reflect.Value{}, false
		}
		return c.FieldByIndex(f.Index), true
	default:
		return reflect.Value{}, false
	}
}

// assign writes val under key in container v.
func assign(v reflect.Value, key string, val any) bool {
	c, ok := deref(v)
	if !ok {
		return false
	}
	switch c.Kind() {
	case reflect.Map:
		k, ok := mapKey(c.Type(), key)
		if !ok || c.IsNil() {
			return false
		}
		rv, ok := coerce(reflect.ValueOf(val), c.Type().Elem())
		if !ok {
			return false
		}
		c.SetMapIndex(k, rv)
		return true
	case reflect.Slice, reflect.Array:
		i, ok := index(c, key)
		if !ok {
			return false
		}
		return setValue(c.Index(i), val)
	case reflect.Struct:
		f, ok := c.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return false
		}
		return setValue(c.FieldByIndex(f.Index), val)
	default:
		return false
	}
}

// setValue stores val into an addressable slot.
func setValue(slot reflect.Value, val any) bool {
	if !slot.CanSet() {
		return false
	}
	rv, ok := coerce(reflect.ValueOf(val), slot.Type())
	if !ok {
		return false
	}
	slot.Set(rv)

	return true
}

// coerce adapts val to type t: direct assignment, or numeric conversion
// (e.g. a float64 result into a float32 field).
func coerce(val reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !val.IsValid() {
		// untyped nil: only nilable destinations accept it.
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	if val.Type().AssignableTo(t) {
		return val, true
	}
	if isNumericKind(val.Kind()) && isNumericKind(t.Kind()) {
		return val.Convert(t), true
	}

	return reflect.Value{}, false
}

// mapKey converts key into t's key type when that type is string-kinded.
func mapKey(t reflect.Type, key string) (reflect.Value, bool) {
	kt := t.Key()
	if kt.Kind() != reflect.String {
		return reflect.Value{}, false
	}

	return reflect.ValueOf(key).Convert(kt), true
}

// index parses key as an in-bounds element index of c.
func index(c reflect.Value, key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= c.Len() {
		return 0, false
	}

	return i, true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
