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
	"fmt"
	"net/mail"
	"reflect"
	"regexp"
	"unicode/utf8"
)

// Refinement narrows what a primitive validator accepts. It returns nil when
// val is acceptable.
type Refinement[T any] func(val T) *PredicateError

type StringOpt = Refinement[string]

type stringValidator struct {
	options []StringOpt
}

// String accepts values whose kind is string and returns them as a plain
// string.
func String(opts ...StringOpt) Validator {
	return &stringValidator{options: opts}
}

func (s *stringValidator) Validate(val any) Result {
	typedVal, ok := toString(val)
	if !ok {
		return Invalid(newUnexpectedTypeofError(val, "string"))
	}
	return refine(typedVal, s.options)
}

func toString(val any) (string, bool) {
	if s, ok := val.(string); ok {
		return s, true
	}
	if val == nil || isUndefined(val) {
		return "", false
	}
	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr && !vo.IsNil() {
		vo = vo.Elem()
	}
	if vo.Kind() != reflect.String {
		return "", false
	}
	return vo.String(), true
}

// refine runs every option against val and reports the first failure.
func refine[T any](val T, opts []Refinement[T]) Result {
	for _, opt := range opts {
		if err := opt(val); err != nil {
			return Invalid(err)
		}
	}
	return Valid(val)
}

// Where builds a refinement from a plain predicate.
func Where[T any](pred func(val T) bool, message ...string) Refinement[T] {
	return func(val T) *PredicateError {
		if !pred(val) {
			return newPredicateError(val, message...)
		}
		return nil
	}
}

func MinLength(min int, message ...string) StringOpt {
	return func(val string) *PredicateError {
		if utf8.RuneCountInString(val) < min {
			return newPredicateError(val, orDefault(message, fmt.Sprintf("string shorter than %d characters", min)))
		}
		return nil
	}
}

func MaxLength(max int, message ...string) StringOpt {
	return func(val string) *PredicateError {
		if utf8.RuneCountInString(val) > max {
			return newPredicateError(val, orDefault(message, fmt.Sprintf("string longer than %d characters", max)))
		}
		return nil
	}
}

// Matches panics when patt does not compile; patterns are fixed at schema
// definition time.
func Matches(patt string, message ...string) StringOpt {
	re := regexp.MustCompile(patt)
	return func(val string) *PredicateError {
		if !re.MatchString(val) {
			return newPredicateError(val, orDefault(message, "string does not match pattern"))
		}
		return nil
	}
}

func Email(message ...string) StringOpt {
	return func(val string) *PredicateError {
		addr, err := mail.ParseAddress(val)
		if err != nil || addr.Address != val {
			return newPredicateError(val, orDefault(message, "invalid email address"))
		}
		return nil
	}
}

func Enum(values ...string) StringOpt {
	return func(val string) *PredicateError {
		for _, v := range values {
			if v == val {
				return nil
			}
		}
		return newPredicateError(val, "value not found in enum")
	}
}

func orDefault(message []string, def string) string {
	if len(message) > 0 {
		return message[0]
	}
	return def
}
