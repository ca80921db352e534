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
	"github.com/google/uuid"
)

type UUIDOpt = Refinement[uuid.UUID]

type uuidValidator struct {
	options []UUIDOpt
}

// UUID accepts uuid.UUID values and strings that parse as a UUID, returning
// a uuid.UUID.
func UUID(opts ...UUIDOpt) Validator {
	return &uuidValidator{options: opts}
}

func (u *uuidValidator) Validate(val any) Result {
	var typedVal uuid.UUID
	switch val := val.(type) {
	case uuid.UUID:
		typedVal = val
	case *uuid.UUID:
		if val == nil {
			return Invalid(newUnexpectedTypeofError(val, "uuid"))
		}
		typedVal = *val
	default:
		s, ok := toString(val)
		if !ok {
			return Invalid(newUnexpectedTypeofError(val, "uuid"))
		}
		parsed, err := uuid.Parse(s)
		if err != nil {
			return Invalid(newTransformError(val, err))
		}
		typedVal = parsed
	}
	return refine(typedVal, u.options)
}

func NonNullUUID(message ...string) UUIDOpt {
	return func(val uuid.UUID) *PredicateError {
		if val == uuid.Nil {
			return newPredicateError(val, orDefault(message, "uuid is zero"))
		}
		return nil
	}
}
