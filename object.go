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
	"strings"
)

// Shape maps field names to the validator for that field.
type Shape map[string]Validator

// ObjectValidator validates that a value has at least the fields of its
// shape. Fields outside the shape are passed through untouched.
type ObjectValidator struct {
	shape Shape
	names []string
}

// Object validates maps with string keys and structs (or pointers to
// either). Missing fields are validated as Undefined. On success the result
// is a new map[string]any holding every original field, with the fields of
// the shape replaced by their refined values.
func Object(shape Shape) *ObjectValidator {
	copied := make(Shape, len(shape))
	for name, v := range shape {
		copied[name] = v
	}
	return &ObjectValidator{shape: copied, names: sortedKeys(copied)}
}

func (o *ObjectValidator) Validate(val any) Result {
	fields, err := extractObject(val)
	if err != nil {
		return Invalid(err)
	}

	out := make(map[string]any, len(fields)+len(o.shape))
	for name, fieldVal := range fields {
		out[name] = fieldVal
	}

	invalid := make(map[string]ValidationError)
	for _, name := range o.names {
		fieldVal, ok := fields[name]
		if !ok {
			fieldVal = Undefined
		}

		res := o.shape[name].Validate(fieldVal)
		switch {
		case !res.IsValid():
			invalid[name] = res.Err()
		case isUndefined(res.Value()):
			delete(out, name)
		default:
			out[name] = res.Value()
		}
	}

	if len(invalid) > 0 {
		return Invalid(newBadObjectError(val, invalid))
	}
	return Valid(out)
}

// Shape returns a copy of the per-field validators.
func (o *ObjectValidator) Shape() Shape {
	copied := make(Shape, len(o.shape))
	for name, v := range o.shape {
		copied[name] = v
	}
	return copied
}

// Partial makes every field optional.
func (o *ObjectValidator) Partial() *ObjectValidator {
	shape := make(Shape, len(o.shape))
	for name, v := range o.shape {
		shape[name] = Either(v, Exact(Undefined))
	}
	return Object(shape)
}

// Required makes every field mandatory and non-null.
func (o *ObjectValidator) Required() *ObjectValidator {
	shape := make(Shape, len(o.shape))
	for name, v := range o.shape {
		shape[name] = Exclude(v, Either(Exact(Undefined), Exact(nil)))
	}
	return Object(shape)
}

// Extend returns a validator whose shape is o's shape plus ext. Fields in
// ext replace fields of the same name.
func (o *ObjectValidator) Extend(ext Shape) *ObjectValidator {
	shape := o.Shape()
	for name, v := range ext {
		shape[name] = v
	}
	return Object(shape)
}

type objectOfValidator struct {
	validator Validator
}

// ObjectOf validates every field of an object, whatever its name, with v.
func ObjectOf(v Validator) Validator {
	return &objectOfValidator{validator: v}
}

func (o *objectOfValidator) Validate(val any) Result {
	fields, err := extractObject(val)
	if err != nil {
		return Invalid(err)
	}

	out := make(map[string]any, len(fields))
	invalid := make(map[string]ValidationError)
	for _, name := range sortedKeys(fields) {
		res := o.validator.Validate(fields[name])
		if !res.IsValid() {
			invalid[name] = res.Err()
			continue
		}
		out[name] = res.Value()
	}

	if len(invalid) > 0 {
		return Invalid(newBadObjectError(val, invalid))
	}
	return Valid(out)
}

func extractObject(val any) (map[string]any, ValidationError) {
	switch {
	case isUndefined(val):
		return nil, newValueIsUndefinedError(val)
	case isNull(val):
		return nil, newValueIsNullError(val)
	}
	fields, ok := objectFields(val)
	if !ok {
		return nil, newUnexpectedTypeofError(val, "object")
	}
	return fields, nil
}

// objectFields returns the own fields of a map with string keys or of a
// struct. The returned map must be treated as read only: for a
// map[string]any it is the value itself.
func objectFields(val any) (map[string]any, bool) {
	if m, ok := val.(map[string]any); ok {
		return m, true
	}

	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		if vo.IsNil() {
			return nil, false
		}
		vo = vo.Elem()
	}

	switch vo.Kind() {
	case reflect.Map:
		if vo.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		fields := make(map[string]any, vo.Len())
		iter := vo.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}
		return fields, true
	case reflect.Struct:
		fields := make(map[string]any, vo.NumField())
		structFields(vo, fields)
		return fields, true
	}
	return nil, false
}

func structFields(vo reflect.Value, fields map[string]any) {
	t := vo.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		fv := vo.Field(i)
		if sf.Anonymous && name == "" {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				structFields(fv, fields)
				continue
			}
		}
		if !sf.IsExported() || !fv.CanInterface() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if _, ok := fields[name]; ok {
			continue
		}
		fields[name] = fv.Interface()
	}
}
