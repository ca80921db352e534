// Package validators builds composable validators for runtime values of
// unknown shape, such as decoded JSON.
//
// A Validator checks a value and returns a Result: either the refined value
// or a ValidationError describing every reason the value was rejected.
// Validators are built once and reused; they hold no mutable state and are
// safe for concurrent use.
//
//	var userJoined = validators.Object(validators.Shape{
//		"type": validators.Exact("USER_JOINED"),
//		"id":   validators.UUID(),
//		"name": validators.String(validators.MinLength(1)),
//		"nick": validators.Either(validators.String(), validators.Exact(validators.Undefined)),
//	})
//
//	res := userJoined.Validate(payload)
//	if !res.IsValid() {
//		for _, issue := range validators.Issues(res.Err()) {
//			fmt.Println(issue)
//		}
//	}
//
// Go values stand in for the JavaScript value universe the combinators were
// modelled on: Undefined marks an absent value, nil is null, any numeric kind
// is a number (refined to float64), maps with string keys and structs are
// objects, slices and arrays are arrays.
//
// Primitives: String, Number, Boolean, Exact, Any, Unknown, KeyOf, UUID and
// Time. Combinators: Object (with Partial, Required, Shape and Extend),
// ObjectOf, ArrayOf, Tuple, Either, Exclude, Except, Intersection, Chain,
// Predicate, ReplaceError, Fallback, Transform and Lazy.
//
// Object, ObjectOf, ArrayOf, Tuple and Either collect every failing child
// into one error. Chain, Intersection and Except stop at the first failure
// and return its error unchanged.
//
// Validate and MustValidate are the entry points for callers that prefer an
// error return (or a panic) to inspecting a Result.
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
