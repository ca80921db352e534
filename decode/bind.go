package decode

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
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/jdudmesh/validators"
	"github.com/mitchellh/mapstructure"
)

// Into validates value with v and, when it is valid, binds the refined
// value into out, which must be a non-nil pointer. A validation failure is
// returned as the validators.ValidationError itself.
func Into(v validators.Validator, value any, out any) error {
	res := v.Validate(value)
	if !res.IsValid() {
		return res.Err()
	}
	return Bind(res.Value(), out)
}

// Bind copies an already validated value into out. Struct fields are
// matched by their json tag names and embedded structs are flattened. RFC
// 3339 strings and uuid strings are converted when the target field needs
// them. Failures wrap ErrBind.
func Bind(value any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			stringToUUIDHook,
		),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBind, err)
	}

	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("%w: %w", ErrBind, err)
	}

	return nil
}

var uuidType = reflect.TypeOf(uuid.UUID{})

func stringToUUIDHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != uuidType {
		return data, nil
	}
	return uuid.Parse(reflect.ValueOf(data).String())
}
