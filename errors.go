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
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Kind identifies the category of a ValidationError.
type Kind string

const (
	KindUnexpectedTypeof     Kind = "UnexpectedTypeofError"
	KindNotExactValue        Kind = "NotExactValueError"
	KindValueIsUndefined     Kind = "ValueIsUndefinedError"
	KindValueIsNull          Kind = "ValueIsNullError"
	KindNotAnArray           Kind = "NotAnArrayError"
	KindUnexpectedArrayLen   Kind = "UnexpectedArrayLengthError"
	KindBadObject            Kind = "BadObjectError"
	KindArrayOfInvalidValues Kind = "ArrayOfInvalidValuesError"
	KindTuple                Kind = "TupleError"
	KindEither               Kind = "EitherError"
	KindExclude              Kind = "ExcludeError"
	KindUnexpectedValue      Kind = "UnexpectedValueError"
	KindKeyNotExist          Kind = "KeyNotExistError"
	KindPredicate            Kind = "PredicateError"
	KindTransform            Kind = "TransformError"
	KindCustom               Kind = "CustomError"
)

// ValidationError is implemented by every error a validator reports. The set
// of implementations is closed; switch on Kind or use errors.As to reach the
// kind specific payload.
type ValidationError interface {
	error
	Kind() Kind
	Message() string
	// Value is the offending value, shared with the caller and never modified.
	Value() any

	validationError()
}

type baseError struct {
	kind    Kind
	message string
	value   any
}

func (e *baseError) Kind() Kind {
	return e.kind
}

func (e *baseError) Message() string {
	return e.message
}

func (e *baseError) Value() any {
	return e.value
}

func (e *baseError) Error() string {
	return e.message
}

func (e *baseError) validationError() {}

// IndexedError pairs a position in a sequence with the error found there.
type IndexedError struct {
	Index int
	Err   ValidationError
}

type UnexpectedTypeofError struct {
	baseError
	Expected string
}

func newUnexpectedTypeofError(val any, expected string) *UnexpectedTypeofError {
	return &UnexpectedTypeofError{
		baseError: baseError{
			kind:    KindUnexpectedTypeof,
			message: fmt.Sprintf("expected %s, got %s", expected, typeOf(val)),
			value:   val,
		},
		Expected: expected,
	}
}

type NotExactValueError struct {
	baseError
	Expected any
}

func newNotExactValueError(val, expected any) *NotExactValueError {
	return &NotExactValueError{
		baseError: baseError{
			kind:    KindNotExactValue,
			message: fmt.Sprintf("expected exactly %s, got %s", literal(expected), literal(val)),
			value:   val,
		},
		Expected: expected,
	}
}

type ValueIsUndefinedError struct {
	baseError
}

func newValueIsUndefinedError(val any) *ValueIsUndefinedError {
	return &ValueIsUndefinedError{baseError{kind: KindValueIsUndefined, message: "value is undefined", value: val}}
}

type ValueIsNullError struct {
	baseError
}

func newValueIsNullError(val any) *ValueIsNullError {
	return &ValueIsNullError{baseError{kind: KindValueIsNull, message: "value is null", value: val}}
}

type NotAnArrayError struct {
	baseError
}

func newNotAnArrayError(val any) *NotAnArrayError {
	return &NotAnArrayError{baseError{
		kind:    KindNotAnArray,
		message: fmt.Sprintf("expected array, got %s", typeOf(val)),
		value:   val,
	}}
}

type UnexpectedArrayLengthError struct {
	baseError
	ExpectedLength int
}

func newUnexpectedArrayLengthError(val any, expected, actual int) *UnexpectedArrayLengthError {
	return &UnexpectedArrayLengthError{
		baseError: baseError{
			kind:    KindUnexpectedArrayLen,
			message: fmt.Sprintf("expected array of length %d, got %d", expected, actual),
			value:   val,
		},
		ExpectedLength: expected,
	}
}

// BadObjectError reports every field of an object that failed validation.
type BadObjectError struct {
	baseError
	Fields map[string]ValidationError
}

func newBadObjectError(val any, fields map[string]ValidationError) *BadObjectError {
	names := sortedKeys(fields)
	return &BadObjectError{
		baseError: baseError{
			kind:    KindBadObject,
			message: fmt.Sprintf("invalid fields: %s", strings.Join(names, ", ")),
			value:   val,
		},
		Fields: fields,
	}
}

// Unwrap exposes the field errors ordered by field name.
func (e *BadObjectError) Unwrap() []error {
	names := sortedKeys(e.Fields)
	errs := make([]error, len(names))
	for i, name := range names {
		errs[i] = e.Fields[name]
	}
	return errs
}

type ArrayOfInvalidValuesError struct {
	baseError
	Count   int
	Invalid []IndexedError
}

func newArrayOfInvalidValuesError(val any, invalid []IndexedError) *ArrayOfInvalidValuesError {
	return &ArrayOfInvalidValuesError{
		baseError: baseError{
			kind:    KindArrayOfInvalidValues,
			message: fmt.Sprintf("%d invalid array values at %s", len(invalid), indexList(invalid)),
			value:   val,
		},
		Count:   len(invalid),
		Invalid: invalid,
	}
}

func (e *ArrayOfInvalidValuesError) Unwrap() []error {
	return unwrapIndexed(e.Invalid)
}

type TupleError struct {
	baseError
	Positions []IndexedError
}

func newTupleError(val any, positions []IndexedError) *TupleError {
	return &TupleError{
		baseError: baseError{
			kind:    KindTuple,
			message: fmt.Sprintf("invalid tuple positions %s", indexList(positions)),
			value:   val,
		},
		Positions: positions,
	}
}

func (e *TupleError) Unwrap() []error {
	return unwrapIndexed(e.Positions)
}

// EitherError carries the error of every alternative, in the order they were
// tried.
type EitherError struct {
	baseError
	Alternatives []ValidationError
}

func newEitherError(val any, alternatives []ValidationError) *EitherError {
	return &EitherError{
		baseError: baseError{
			kind:    KindEither,
			message: fmt.Sprintf("value matched none of %d alternatives", len(alternatives)),
			value:   val,
		},
		Alternatives: alternatives,
	}
}

func (e *EitherError) Unwrap() []error {
	errs := make([]error, len(e.Alternatives))
	for i, err := range e.Alternatives {
		errs[i] = err
	}
	return errs
}

type ExcludeError struct {
	baseError
}

func newExcludeError(val any) *ExcludeError {
	return &ExcludeError{baseError{kind: KindExclude, message: "value is excluded", value: val}}
}

type UnexpectedValueError struct {
	baseError
}

func newUnexpectedValueError(val any) *UnexpectedValueError {
	return &UnexpectedValueError{baseError{
		kind:    KindUnexpectedValue,
		message: fmt.Sprintf("unexpected value %s", literal(val)),
		value:   val,
	}}
}

type KeyNotExistError struct {
	baseError
	Key string
}

func newKeyNotExistError(val any, key string) *KeyNotExistError {
	return &KeyNotExistError{
		baseError: baseError{
			kind:    KindKeyNotExist,
			message: fmt.Sprintf("key %q does not exist", key),
			value:   val,
		},
		Key: key,
	}
}

type PredicateError struct {
	baseError
}

func newPredicateError(val any, message ...string) *PredicateError {
	msg := "predicate failed"
	if len(message) > 0 {
		msg = message[0]
	}
	return &PredicateError{baseError{kind: KindPredicate, message: msg, value: val}}
}

// TransformError wraps the error returned (or the panic raised) by a
// Transform parse function.
type TransformError struct {
	baseError
	Cause error
}

func newTransformError(val any, cause error) *TransformError {
	return &TransformError{
		baseError: baseError{
			kind:    KindTransform,
			message: fmt.Sprintf("transform failed: %v", cause),
			value:   val,
		},
		Cause: cause,
	}
}

func (e *TransformError) Unwrap() error {
	return e.Cause
}

// CustomError is the error kind available to callers, typically built inside
// a ReplaceError callback.
type CustomError struct {
	baseError
}

func NewCustomError(message string, val any) *CustomError {
	return &CustomError{baseError{kind: KindCustom, message: message, value: val}}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

func indexList(errs []IndexedError) string {
	idx := make([]string, len(errs))
	for i, e := range errs {
		idx[i] = fmt.Sprint(e.Index)
	}
	return "[" + strings.Join(idx, ", ") + "]"
}

func unwrapIndexed(errs []IndexedError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e.Err
	}
	return out
}

func literal(val any) string {
	switch val := val.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case nil:
		return "null"
	}
	return fmt.Sprintf("%v", val)
}
