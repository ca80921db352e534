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
	"errors"
	"fmt"
	"time"
)

var ErrMissingTimeFormat = errors.New("missing time format")

type TimeOpt = Refinement[time.Time]

type timeFormat string

type timeValidator struct {
	layout  string
	options []TimeOpt
}

// Time accepts time.Time values and, when WithTimeFormat is given, strings
// in that layout. opts may mix TimeOpt refinements and WithTimeFormat.
func Time(opts ...any) Validator {
	v := &timeValidator{}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case TimeOpt:
			v.options = append(v.options, opt)
		case timeFormat:
			v.layout = string(opt)
		}
	}
	return v
}

func (t *timeValidator) Validate(val any) Result {
	var typedVal time.Time
	switch val := val.(type) {
	case time.Time:
		typedVal = val
	case *time.Time:
		if val == nil {
			return Invalid(newUnexpectedTypeofError(val, "time"))
		}
		typedVal = *val
	default:
		s, ok := toString(val)
		if !ok {
			return Invalid(newUnexpectedTypeofError(val, "time"))
		}
		if t.layout == "" {
			return Invalid(newTransformError(val, ErrMissingTimeFormat))
		}
		parsed, err := time.Parse(t.layout, s)
		if err != nil {
			return Invalid(newTransformError(val, err))
		}
		typedVal = parsed
	}
	return refine(typedVal, t.options)
}

func WithTimeFormat(layout string) timeFormat {
	return timeFormat(layout)
}

func NotBefore(datum time.Time, message ...string) TimeOpt {
	return func(val time.Time) *PredicateError {
		if val.Before(datum) {
			return newPredicateError(val, orDefault(message, fmt.Sprintf("time is before %s", datum.Format(time.RFC3339))))
		}
		return nil
	}
}

func NotAfter(datum time.Time, message ...string) TimeOpt {
	return func(val time.Time) *PredicateError {
		if val.After(datum) {
			return newPredicateError(val, orDefault(message, fmt.Sprintf("time is after %s", datum.Format(time.RFC3339))))
		}
		return nil
	}
}
