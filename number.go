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
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

type NumberOpt = Refinement[float64]

type numberValidator struct {
	options []NumberOpt
}

// Number accepts any Go integer or floating point value, or a json.Number,
// and returns it as a float64.
func Number(opts ...NumberOpt) Validator {
	return &numberValidator{options: opts}
}

func (n *numberValidator) Validate(val any) Result {
	typedVal, ok := toFloat64(val)
	if !ok {
		return Invalid(newUnexpectedTypeofError(val, "number"))
	}
	return refine(typedVal, n.options)
}

func Min[N number](min N, message ...string) NumberOpt {
	bound := float64(min)
	return func(val float64) *PredicateError {
		if val < bound {
			return newPredicateError(val, orDefault(message, fmt.Sprintf("number less than %v", min)))
		}
		return nil
	}
}

func Max[N number](max N, message ...string) NumberOpt {
	bound := float64(max)
	return func(val float64) *PredicateError {
		if val > bound {
			return newPredicateError(val, orDefault(message, fmt.Sprintf("number greater than %v", max)))
		}
		return nil
	}
}

func NonZero(message ...string) NumberOpt {
	return func(val float64) *PredicateError {
		if val == 0 {
			return newPredicateError(val, orDefault(message, "number is zero"))
		}
		return nil
	}
}

func MustBeInteger(message ...string) NumberOpt {
	return func(val float64) *PredicateError {
		if val != math.Trunc(val) || math.IsInf(val, 0) {
			return newPredicateError(val, orDefault(message, "number is not integer"))
		}
		return nil
	}
}

func isNumeric(val any) bool {
	_, ok := toFloat64(val)
	return ok
}

func toFloat64(val any) (float64, bool) {
	switch val := val.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case nil:
		return 0, false
	}

	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		if vo.IsNil() {
			return 0, false
		}
		vo = vo.Elem()
	}

	switch vo.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(vo.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(vo.Uint()), true
	case reflect.Float32, reflect.Float64:
		return vo.Float(), true
	}
	return 0, false
}
