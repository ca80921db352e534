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

import "fmt"

type eitherValidator struct {
	alternatives []Validator
}

// Either tries each alternative in order and returns the result of the first
// one that accepts the value.
func Either(alternatives ...Validator) Validator {
	return &eitherValidator{alternatives: append([]Validator(nil), alternatives...)}
}

func (e *eitherValidator) Validate(val any) Result {
	errs := make([]ValidationError, 0, len(e.alternatives))
	for _, v := range e.alternatives {
		res := v.Validate(val)
		if res.IsValid() {
			return res
		}
		errs = append(errs, res.Err())
	}
	return Invalid(newEitherError(val, errs))
}

// Exclude accepts values that a accepts and b rejects. Both failure cases
// are reported as ExcludeError.
func Exclude(a, b Validator) Validator {
	return ValidatorFunc(func(val any) Result {
		res := a.Validate(val)
		if !res.IsValid() || b.Validate(val).IsValid() {
			return Invalid(newExcludeError(val))
		}
		return res
	})
}

// Except accepts values that v accepts and invalidator rejects. When v
// rejects the value its error is returned unchanged.
func Except(v, invalidator Validator) Validator {
	return ValidatorFunc(func(val any) Result {
		res := v.Validate(val)
		if !res.IsValid() {
			return res
		}
		if invalidator.Validate(val).IsValid() {
			return Invalid(newUnexpectedValueError(val))
		}
		return res
	})
}

type sequenceValidator struct {
	first, second Validator
}

func (s *sequenceValidator) Validate(val any) Result {
	res := s.first.Validate(val)
	if !res.IsValid() {
		return res
	}
	return s.second.Validate(res.Value())
}

// Chain validates with left and feeds its refined value to right.
func Chain(left, right Validator) Validator {
	return &sequenceValidator{first: left, second: right}
}

// Intersection is Chain under another name.
func Intersection(a, b Validator) Validator {
	return &sequenceValidator{first: a, second: b}
}

// Predicate refines v: the refined value must also satisfy pred.
func Predicate(v Validator, pred func(val any) bool, message ...string) Validator {
	return ValidatorFunc(func(val any) Result {
		res := v.Validate(val)
		if !res.IsValid() {
			return res
		}
		if !pred(res.Value()) {
			return Invalid(newPredicateError(res.Value(), message...))
		}
		return res
	})
}

// ReplaceError substitutes the error reported by v with the one built by
// createError from the rejected value and the original error. The original
// error is kept when createError returns nil.
func ReplaceError(v Validator, createError func(val any, err ValidationError) ValidationError) Validator {
	return ValidatorFunc(func(val any) Result {
		res := v.Validate(val)
		if res.IsValid() {
			return res
		}
		if err := createError(val, res.Err()); err != nil {
			return Invalid(err)
		}
		return res
	})
}

// Fallback never fails: when v rejects the value, the result is the value
// returned by getFallback, which is called only in that case.
func Fallback(v Validator, getFallback func() any) Validator {
	return ValidatorFunc(func(val any) Result {
		res := v.Validate(val)
		if res.IsValid() {
			return res
		}
		return Valid(getFallback())
	})
}

// Transform turns a parse function into a validator. An error returned by
// parse, or a panic raised inside it, is reported as a TransformError.
func Transform(parse func(val any) (any, error)) Validator {
	return ValidatorFunc(func(val any) (res Result) {
		defer func() {
			if r := recover(); r != nil {
				cause, ok := r.(error)
				if !ok {
					cause = fmt.Errorf("%v", r)
				}
				res = Invalid(newTransformError(val, cause))
			}
		}()

		out, err := parse(val)
		if err != nil {
			return Invalid(newTransformError(val, err))
		}
		return Valid(out)
	})
}

// Lazy defers building a validator until a value is validated, which lets a
// schema refer to itself. factory is called on every Validate call and its
// result is not cached, so it must be free of side effects. Recursion depth
// is bounded only by the depth of the data.
func Lazy(factory func() Validator) Validator {
	return ValidatorFunc(func(val any) Result {
		return factory().Validate(val)
	})
}
