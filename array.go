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

import "reflect"

type arrayOfValidator struct {
	validator Validator
}

// ArrayOf accepts slices and arrays whose every element satisfies v. The
// result is a new []any of the refined elements.
func ArrayOf(v Validator) Validator {
	return &arrayOfValidator{validator: v}
}

func (a *arrayOfValidator) Validate(val any) Result {
	items, ok := elements(val)
	if !ok {
		return Invalid(newNotAnArrayError(val))
	}

	out := make([]any, len(items))
	var invalid []IndexedError
	for i, item := range items {
		res := a.validator.Validate(item)
		if !res.IsValid() {
			invalid = append(invalid, IndexedError{Index: i, Err: res.Err()})
			continue
		}
		out[i] = res.Value()
	}

	if len(invalid) > 0 {
		return Invalid(newArrayOfInvalidValuesError(val, invalid))
	}
	return Valid(out)
}

type tupleValidator struct {
	validators []Validator
}

// Tuple accepts sequences of exactly len(vs) elements, validating element i
// with vs[i].
func Tuple(vs ...Validator) Validator {
	return &tupleValidator{validators: append([]Validator(nil), vs...)}
}

func (t *tupleValidator) Validate(val any) Result {
	items, ok := elements(val)
	if !ok {
		return Invalid(newNotAnArrayError(val))
	}
	if len(items) != len(t.validators) {
		return Invalid(newUnexpectedArrayLengthError(val, len(t.validators), len(items)))
	}

	out := make([]any, len(items))
	var invalid []IndexedError
	for i, v := range t.validators {
		res := v.Validate(items[i])
		if !res.IsValid() {
			invalid = append(invalid, IndexedError{Index: i, Err: res.Err()})
			continue
		}
		out[i] = res.Value()
	}

	if len(invalid) > 0 {
		return Invalid(newTupleError(val, invalid))
	}
	return Valid(out)
}

// elements flattens a slice, an array or a pointer to either. Nil slices
// are null rather than empty arrays.
func elements(val any) ([]any, bool) {
	if isNull(val) || isUndefined(val) {
		return nil, false
	}
	if items, ok := val.([]any); ok {
		return items, true
	}

	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		vo = vo.Elem()
	}
	switch {
	case vo.Kind() == reflect.Slice && vo.IsNil():
		return nil, false
	case vo.Kind() != reflect.Slice && vo.Kind() != reflect.Array:
		return nil, false
	}

	items := make([]any, vo.Len())
	for i := range items {
		items[i] = vo.Index(i).Interface()
	}
	return items, true
}
