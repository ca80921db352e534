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
	"reflect"
)

// Validator checks a runtime value and, when it is acceptable, returns a
// refined version of it.
type Validator interface {
	Validate(value any) Result
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(value any) Result

func (fn ValidatorFunc) Validate(value any) Result {
	return fn(value)
}

// Result is the outcome of a single validation: either a refined value or
// the error explaining why the value was rejected.
type Result struct {
	value any
	err   ValidationError
	valid bool
}

func Valid(value any) Result {
	return Result{value: value, valid: true}
}

// Invalid builds a rejected result. A nil err still yields an invalid result.
func Invalid(err ValidationError) Result {
	return Result{err: err}
}

func (r Result) IsValid() bool {
	return r.valid
}

// Value returns the refined value. It is nil for an invalid result.
func (r Result) Value() any {
	return r.value
}

// Err returns the validation error. It is nil for a valid result.
func (r Result) Err() ValidationError {
	return r.err
}

// Get returns the refined value of r as a T. ok is false when r is invalid
// or the value is not a T. A nil value is returned as the zero T when T
// can hold nil.
func Get[T any](r Result) (val T, ok bool) {
	if !r.IsValid() {
		return val, false
	}
	if r.value == nil {
		return val, nilable[T]()
	}
	val, ok = r.value.(T)
	return val, ok
}

// Validate runs v against value and returns the refined value. A rejected
// value is reported through the returned error, which is always a
// ValidationError.
func Validate[T any](v Validator, value any) (T, error) {
	var zero T

	res := v.Validate(value)
	if !res.IsValid() {
		return zero, res.Err()
	}

	if res.Value() == nil && nilable[T]() {
		return zero, nil
	}

	typed, ok := res.Value().(T)
	if !ok {
		return zero, newUnexpectedTypeofError(res.Value(), reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return typed, nil
}

// nilable reports whether the zero value of T is nil.
func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// MustValidate is like Validate but panics with the ValidationError.
func MustValidate[T any](v Validator, value any) T {
	typed, err := Validate[T](v, value)
	if err != nil {
		panic(err)
	}
	return typed
}

type undefined struct{}

func (undefined) String() string {
	return "undefined"
}

// Undefined stands for an absent value. Object passes it to field
// validators when the field is missing, so Either(v, Exact(Undefined))
// describes an optional field.
var Undefined any = undefined{}

func isUndefined(val any) bool {
	_, ok := val.(undefined)
	return ok
}

// isNull reports whether val is nil or a nil pointer, map, slice or interface.
func isNull(val any) bool {
	if val == nil {
		return true
	}
	vo := reflect.ValueOf(val)
	switch vo.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return vo.IsNil()
	}
	return false
}

// typeOf names the runtime type of val in the vocabulary used by error
// messages: undefined, null, string, number, boolean, object, array,
// function or the Go type for anything else.
func typeOf(val any) string {
	switch {
	case isUndefined(val):
		return "undefined"
	case val == nil:
		return "null"
	case isNumeric(val):
		return "number"
	}

	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		if vo.IsNil() {
			return "null"
		}
		vo = vo.Elem()
	}

	switch vo.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Func:
		return "function"
	default:
		return vo.Type().String()
	}
}
