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

type BoolOpt = Refinement[bool]

type boolValidator struct {
	options []BoolOpt
}

func Boolean(opts ...BoolOpt) Validator {
	return &boolValidator{options: opts}
}

func (b *boolValidator) Validate(val any) Result {
	typedVal, ok := toBool(val)
	if !ok {
		return Invalid(newUnexpectedTypeofError(val, "boolean"))
	}
	return refine(typedVal, b.options)
}

func toBool(val any) (bool, bool) {
	if b, ok := val.(bool); ok {
		return b, true
	}
	if val == nil || isUndefined(val) {
		return false, false
	}
	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr && !vo.IsNil() {
		vo = vo.Elem()
	}
	if vo.Kind() != reflect.Bool {
		return false, false
	}
	return vo.Bool(), true
}

func True(message ...string) BoolOpt {
	return func(val bool) *PredicateError {
		if !val {
			return newPredicateError(val, orDefault(message, "value should be true"))
		}
		return nil
	}
}

func False(message ...string) BoolOpt {
	return func(val bool) *PredicateError {
		if val {
			return newPredicateError(val, orDefault(message, "value should be false"))
		}
		return nil
	}
}
