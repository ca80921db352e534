package events

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
	"strings"
	"time"

	v "github.com/jdudmesh/validators"
)

const (
	MaxNameLength   = 64
	MaxReasonLength = 200
	MaxBodyLength   = 4000
)

// Priorities maps the accepted priority names to their rank.
var Priorities = map[string]int{
	"low":    0,
	"normal": 1,
	"high":   2,
}

var UserSchema = v.Object(v.Shape{
	"id":    v.UUID(v.NonNullUUID()),
	"name":  v.Except(v.String(v.MinLength(1), v.MaxLength(MaxNameLength)), v.Exact("system")),
	"email": v.String(v.Email()),
	"role":  withDefault(v.String(v.Enum("member", "admin")), "member"),
})

var UserJoinedSchema = v.Object(envelope(TypeUserJoined)).Extend(v.Shape{
	"user": UserSchema,
})

var UserLeftSchema = v.Object(envelope(TypeUserLeft)).Extend(v.Shape{
	"userId": v.UUID(v.NonNullUUID()),
	"reason": v.Fallback(v.String(v.MaxLength(MaxReasonLength)), func() any { return "unspecified" }),
})

var MessagePostedSchema = v.Object(envelope(TypeMessagePosted)).Extend(v.Shape{
	"channel": v.ReplaceError(
		v.String(v.Matches(`^#[a-z0-9][a-z0-9-]*$`)),
		func(val any, err v.ValidationError) v.ValidationError {
			return v.NewCustomError("channel must be a lowercase #name", val)
		},
	),
	"priority": withDefault(v.KeyOf(Priorities), "normal"),
	"geo":      optional(v.Tuple(v.Number(v.Min(-90), v.Max(90)), v.Number(v.Min(-180), v.Max(180)))),
	"message":  v.Lazy(Thread),
})

var schemas = map[string]v.Validator{
	TypeUserJoined:    UserJoinedSchema,
	TypeUserLeft:      UserLeftSchema,
	TypeMessagePosted: MessagePostedSchema,
}

var discriminant = v.Object(v.Shape{
	"type": v.KeyOf(schemas),
})

// Thread validates a message and, recursively, all of its replies.
func Thread() v.Validator {
	return v.Object(v.Shape{
		"id":     v.UUID(),
		"author": v.UUID(v.NonNullUUID()),
		"body": v.Intersection(
			v.String(v.MaxLength(MaxBodyLength)),
			v.Predicate(v.String(), notBlank, "message body is blank"),
		),
		"tags":    optional(v.ArrayOf(v.Chain(v.String(v.MinLength(1)), v.Transform(lower)))),
		"replies": optional(v.ArrayOf(v.Lazy(Thread))),
	})
}

// Schema validates any event. The type field is checked first and picks
// the schema for the rest of the document.
func Schema() v.Validator {
	return v.ValidatorFunc(func(val any) v.Result {
		res := discriminant.Validate(val)
		if !res.IsValid() {
			return res
		}
		eventType := res.Value().(map[string]any)["type"].(string)
		return schemas[eventType].Validate(val)
	})
}

// SchemaFor returns the schema of a single event type.
func SchemaFor(eventType string) (v.Validator, bool) {
	s, ok := schemas[eventType]
	return s, ok
}

func envelope(eventType string) v.Shape {
	return v.Shape{
		"id":   v.UUID(v.NonNullUUID()),
		"type": v.Exact(eventType),
		"at":   v.Time(v.WithTimeFormat(time.RFC3339), v.NotAfter(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))),
	}
}

func optional(val v.Validator) v.Validator {
	return v.Either(val, v.Exact(v.Undefined))
}

// withDefault accepts val or, when the field is missing, substitutes def.
func withDefault(val v.Validator, def any) v.Validator {
	return v.Either(val, v.Chain(v.Exact(v.Undefined), v.Transform(func(any) (any, error) {
		return def, nil
	})))
}

func notBlank(val any) bool {
	return strings.TrimSpace(val.(string)) != ""
}

func lower(val any) (any, error) {
	return strings.ToLower(val.(string)), nil
}
