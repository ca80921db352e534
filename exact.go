package validators

// validators is a composable runtime validation library for Go.
// Copyright (C) 2023 John Dudmesh

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"math"
	"reflect"
)

type exactValidator struct {
	expected any
}

// Exact accepts only values identical to expected. Numbers compare by value
// whatever their Go type, NaN matches NaN and +0 matches -0. Maps, slices,
// pointers and functions compare by identity. Undefined and nil are distinct.
func Exact(expected any) Validator {
	return &exactValidator{expected: expected}
}

func (e *exactValidator) Validate(val any) Result {
	if !sameValue(val, e.expected) {
		return Invalid(newNotExactValueError(val, e.expected))
	}
	return Valid(val)
}

func sameValue(a, b any) bool {
	if isUndefined(a) || isUndefined(b) {
		return isUndefined(a) && isUndefined(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	af, aNum := numericValue(a)
	bf, bNum := numericValue(b)
	if aNum || bNum {
		if !aNum || !bNum {
			return false
		}
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		return af == bf
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}

	switch av.Kind() {
	case reflect.Map, reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}

	if av.Comparable() {
		return a == b
	}
	return false
}

// numericValue is toFloat64 without pointer dereferencing, so pointers keep
// comparing by identity.
func numericValue(val any) (float64, bool) {
	if reflect.ValueOf(val).Kind() == reflect.Ptr {
		return 0, false
	}
	return toFloat64(val)
}

type anyValidator struct{}

func (anyValidator) Validate(val any) Result {
	return Valid(val)
}

// Any accepts every value unchanged.
func Any() Validator {
	return anyValidator{}
}

// Unknown behaves exactly like Any. Use it to mark values that have not
// been validated yet, as opposed to ones that are deliberately permissive.
func Unknown() Validator {
	return anyValidator{}
}

type keyOfValidator struct {
	keys map[string]struct{}
}

// KeyOf accepts strings that are keys of obj, a map with string keys or a
// struct. The key set is captured when KeyOf is called.
func KeyOf(obj any) Validator {
	keys := make(map[string]struct{})
	if fields, ok := objectFields(obj); ok {
		for name := range fields {
			keys[name] = struct{}{}
		}
	}
	return &keyOfValidator{keys: keys}
}

func (k *keyOfValidator) Validate(val any) Result {
	key, ok := toString(val)
	if !ok {
		return Invalid(newUnexpectedTypeofError(val, "string"))
	}
	if _, ok := k.keys[key]; !ok {
		return Invalid(newKeyNotExistError(val, key))
	}
	return Valid(key)
}
