package validators_test

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
	"errors"
	"testing"

	v "github.com/jdudmesh/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomSchema = v.Object(v.Shape{
	"name": v.String(v.MinLength(1)),
	"members": v.ArrayOf(v.Object(v.Shape{
		"id":   v.UUID(),
		"role": v.Either(v.Exact("owner"), v.Exact("guest")),
	})),
	"geo": v.Tuple(v.Number(), v.Number()),
})

func TestIssues(t *testing.T) {
	assert := assert.New(t)

	res := roomSchema.Validate(map[string]any{
		"name": "",
		"members": []any{
			map[string]any{"id": "7b6b1d1e-4c3a-4f0e-9a57-4bd8a1c0c7f2", "role": "owner"},
			map[string]any{"id": "bad", "role": "admin"},
		},
		"geo": []any{51.5, "west"},
	})
	require.False(t, res.IsValid())

	issues := v.Issues(res.Err())
	require.Len(t, issues, 4)
	assert.Equal("geo[1]", issues[0].Path)
	assert.Equal(v.KindUnexpectedTypeof, issues[0].Kind)
	assert.Equal("members[1].id", issues[1].Path)
	assert.Equal(v.KindTransform, issues[1].Kind)
	assert.Equal("members[1].role", issues[2].Path)
	assert.Equal(v.KindEither, issues[2].Kind)
	assert.Equal("name", issues[3].Path)
	assert.Equal("name: string shorter than 1 characters", issues[3].String())

	top := v.Issues(v.String().Validate(1).Err())
	require.Len(t, top, 1)
	assert.Equal("", top[0].Path)
	assert.Equal("expected string, got number", top[0].String())

	assert.Empty(v.Issues(nil))
}

func TestIssuesOptionalField(t *testing.T) {
	assert := assert.New(t)

	schema := v.Object(v.Shape{
		"tags":  v.Either(v.ArrayOf(v.String()), v.Exact(v.Undefined)),
		"label": v.Either(v.String(), v.Exact(v.Undefined)),
	})

	issues := v.Issues(schema.Validate(map[string]any{"tags": []any{"a", 1}, "label": 2}).Err())
	require.Len(t, issues, 2)
	assert.Equal("label", issues[0].Path)
	assert.Equal(v.KindEither, issues[0].Kind)
	assert.Equal("tags[1]", issues[1].Path)
	assert.Equal(v.KindUnexpectedTypeof, issues[1].Kind)
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)

	res := v.Object(v.Shape{
		"tags": v.ArrayOf(v.String()),
		"kind": v.Either(v.Exact("a"), v.Exact("b")),
	}).Validate(map[string]any{"tags": []any{"x", 2}})
	require.False(t, res.IsValid())

	desc := v.Describe(res.Err())
	assert.Equal("BadObjectError", desc["type"])

	fields := desc["fields"].(map[string]any)
	tags := fields["tags"].(map[string]any)
	assert.Equal("ArrayOfInvalidValuesError", tags["type"])
	assert.Equal(1, tags["count"])

	kind := fields["kind"].(map[string]any)
	assert.Equal("EitherError", kind["type"])
	assert.Nil(kind["value"])
	assert.Len(kind["alternatives"], 2)

	encoded, err := json.Marshal(desc)
	require.NoError(t, err)
	assert.Contains(string(encoded), `"errorMessage"`)

	assert.Nil(v.Describe(nil))
}

func TestErrorUnwrap(t *testing.T) {
	assert := assert.New(t)

	errBoom := errors.New("boom")
	schema := v.Object(v.Shape{
		"items": v.ArrayOf(v.Transform(func(val any) (any, error) { return nil, errBoom })),
	})

	res := schema.Validate(map[string]any{"items": []any{1}})
	assert.ErrorIs(res.Err(), errBoom)

	var transformErr *v.TransformError
	assert.ErrorAs(res.Err(), &transformErr)
}
