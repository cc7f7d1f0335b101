package selector

import "reflect"

// EqualFunc reports whether two input values are the same for caching purposes.
type EqualFunc func(a, b any) bool

// Identical is the default equality: maps, slices, pointers, channels and functions
// compare by identity, other comparable values with ==.
// Values of different dynamic types are never identical.
//
// Empty non-nil slices are never identical, even to themselves: they may share
// the runtime's zero-size base pointer, so their identity cannot be told apart.
// Two nil slices of the same type are identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		if va.Len() == 0 || vb.Len() == 0 {
			return va.IsNil() && vb.IsNil()
		}
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// ShallowEqual compares maps and slices one level deep with Identical on their
// elements, and falls back to Identical for everything else.
func ShallowEqual(a, b any) bool {
	if Identical(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !Identical(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !Identical(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return false
}
