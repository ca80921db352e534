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
)

// Issue is a single leaf failure located by its path from the validated
// root value, e.g. "members[2].name".
type Issue struct {
	Path    string `json:"path"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Issues flattens err into its leaf failures. Object, array and tuple
// errors are descended into. An EitherError is descended into only when
// exactly one alternative got past the type and exact-value checks, as
// with an optional field holding a malformed value; otherwise it is a leaf
// like every other kind.
func Issues(err ValidationError) []Issue {
	var issues []Issue
	collectIssues(err, "", &issues)
	return issues
}

func collectIssues(err ValidationError, path string, issues *[]Issue) {
	switch err := err.(type) {
	case nil:
		return
	case *BadObjectError:
		for _, name := range sortedKeys(err.Fields) {
			collectIssues(err.Fields[name], joinField(path, name), issues)
		}
	case *ArrayOfInvalidValuesError:
		for _, item := range err.Invalid {
			collectIssues(item.Err, fmt.Sprintf("%s[%d]", path, item.Index), issues)
		}
	case *TupleError:
		for _, item := range err.Positions {
			collectIssues(item.Err, fmt.Sprintf("%s[%d]", path, item.Index), issues)
		}
	case *EitherError:
		if alt := closestAlternative(err); alt != nil {
			collectIssues(alt, path, issues)
			return
		}
		*issues = append(*issues, Issue{Path: path, Kind: err.Kind(), Message: err.Message()})
	default:
		*issues = append(*issues, Issue{Path: path, Kind: err.Kind(), Message: err.Message()})
	}
}

func closestAlternative(err *EitherError) ValidationError {
	var closest ValidationError
	for _, alt := range err.Alternatives {
		switch alt.(type) {
		case *UnexpectedTypeofError, *NotExactValueError, *NotAnArrayError,
			*ValueIsUndefinedError, *ValueIsNullError:
			continue
		}
		if closest != nil {
			return nil
		}
		closest = alt
	}
	return closest
}

func joinField(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// Describe renders err as a plain map: "type", "errorMessage" and "value",
// plus the payload of its kind. Nested errors are described recursively.
func Describe(err ValidationError) map[string]any {
	if err == nil {
		return nil
	}

	out := map[string]any{
		"type":         string(err.Kind()),
		"errorMessage": err.Message(),
		"value":        describeValue(err.Value()),
	}

	switch err := err.(type) {
	case *UnexpectedTypeofError:
		out["expected"] = err.Expected
	case *NotExactValueError:
		out["expected"] = describeValue(err.Expected)
	case *UnexpectedArrayLengthError:
		out["expectedLength"] = err.ExpectedLength
	case *BadObjectError:
		fields := make(map[string]any, len(err.Fields))
		for name, fieldErr := range err.Fields {
			fields[name] = Describe(fieldErr)
		}
		out["fields"] = fields
	case *ArrayOfInvalidValuesError:
		out["count"] = err.Count
		out["invalid"] = describeIndexed(err.Invalid)
	case *TupleError:
		out["positions"] = describeIndexed(err.Positions)
	case *EitherError:
		alternatives := make([]any, len(err.Alternatives))
		for i, alt := range err.Alternatives {
			alternatives[i] = Describe(alt)
		}
		out["alternatives"] = alternatives
	case *KeyNotExistError:
		out["key"] = err.Key
	case *TransformError:
		out["cause"] = err.Cause.Error()
	case *ValueIsUndefinedError, *ValueIsNullError, *NotAnArrayError,
		*ExcludeError, *UnexpectedValueError, *PredicateError, *CustomError:
	}
	return out
}

func describeIndexed(errs []IndexedError) []any {
	out := make([]any, len(errs))
	for i, e := range errs {
		out[i] = map[string]any{"index": e.Index, "validation": Describe(e.Err)}
	}
	return out
}

// describeValue keeps Undefined out of encoded output.
func describeValue(val any) any {
	if isUndefined(val) {
		return nil
	}
	return val
}
