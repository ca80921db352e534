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
	"testing"

	v "github.com/jdudmesh/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	assert := assert.New(t)

	o := v.Object(v.Shape{
		"Name":  v.String(v.MinLength(5, "String should be at least 5 characters")),
		"Count": v.Number(v.MustBeInteger()),
	})

	res := o.Validate(&struct {
		Name  string
		Count int
	}{
		Name:  "abcdef",
		Count: 5,
	})
	assert.True(res.IsValid())
	assert.Equal(map[string]any{"Name": "abcdef", "Count": float64(5)}, res.Value())

	res = o.Validate(&struct {
		Name string
	}{
		Name: "abc",
	})
	var badObject *v.BadObjectError
	require.ErrorAs(t, res.Err(), &badObject)
	assert.Len(badObject.Fields, 2)
	assert.Equal("String should be at least 5 characters", badObject.Fields["Name"].Error())
	assert.Equal(v.KindUnexpectedTypeof, badObject.Fields["Count"].Kind())

	res = o.Validate(map[string]string{
		"NotName": "abcdefgh",
	})
	require.ErrorAs(t, res.Err(), &badObject)
	assert.Len(badObject.Fields, 2)
}

func TestObjectPrechecks(t *testing.T) {
	assert := assert.New(t)

	o := v.Object(v.Shape{"a": v.Number()})

	assert.Equal(v.KindValueIsUndefined, o.Validate(v.Undefined).Err().Kind())
	assert.Equal(v.KindValueIsNull, o.Validate(nil).Err().Kind())
	var nilMap map[string]any
	assert.Equal(v.KindValueIsNull, o.Validate(nilMap).Err().Kind())

	res := o.Validate("object")
	var typeErr *v.UnexpectedTypeofError
	if assert.ErrorAs(res.Err(), &typeErr) {
		assert.Equal("object", typeErr.Expected)
	}
	assert.Equal(v.KindUnexpectedTypeof, o.Validate([]any{1}).Err().Kind())
	assert.Equal(v.KindUnexpectedTypeof, o.Validate(map[int]any{1: 1}).Err().Kind())
}

func TestObjectOpenShape(t *testing.T) {
	assert := assert.New(t)

	empty := v.Object(v.Shape{})
	for _, val := range []any{map[string]any{}, map[string]any{"extra": true}, struct{ X int }{1}} {
		assert.True(empty.Validate(val).IsValid(), "%#v", val)
	}

	o := v.Object(v.Shape{"a": v.Number()})
	input := map[string]any{"a": 1, "b": "kept"}
	res := o.Validate(input)
	require.True(t, res.IsValid())
	assert.Equal(map[string]any{"a": float64(1), "b": "kept"}, res.Value())
	assert.Equal(1, input["a"], "input must not be modified")
}

func TestObjectOptionalField(t *testing.T) {
	assert := assert.New(t)

	required := v.Object(v.Shape{"a": v.Number()})
	assert.False(required.Validate(map[string]any{}).IsValid())

	optional := v.Object(v.Shape{"a": v.Either(v.Number(), v.Exact(v.Undefined))})
	res := optional.Validate(map[string]any{})
	require.True(t, res.IsValid())
	assert.Equal(map[string]any{}, res.Value())
	assert.True(optional.Validate(map[string]any{"a": 2}).IsValid())
	assert.False(optional.Validate(map[string]any{"a": nil}).IsValid())
}

func TestObjectViews(t *testing.T) {
	assert := assert.New(t)

	o := v.Object(v.Shape{
		"name": v.String(),
		"age":  v.Either(v.Number(), v.Exact(nil), v.Exact(v.Undefined)),
	})

	partial := o.Partial()
	assert.True(partial.Validate(map[string]any{}).IsValid())
	assert.True(partial.Validate(map[string]any{"name": "neo"}).IsValid())
	assert.False(partial.Validate(map[string]any{"name": 1}).IsValid())

	required := o.Required()
	assert.True(required.Validate(map[string]any{"name": "neo", "age": 30}).IsValid())
	res := required.Validate(map[string]any{"name": "neo", "age": nil})
	var badObject *v.BadObjectError
	require.ErrorAs(t, res.Err(), &badObject)
	assert.Equal(v.KindExclude, badObject.Fields["age"].Kind())
	assert.False(required.Validate(map[string]any{"name": "neo"}).IsValid())

	tagged := v.Object(v.Shape{"tags": v.ArrayOf(v.String())}).Required()
	assert.True(tagged.Validate(map[string]any{"tags": []any{}}).IsValid())
	assert.False(tagged.Validate(map[string]any{"tags": []any(nil)}).IsValid())
	assert.False(tagged.Validate(map[string]any{"tags": nil}).IsValid())

	shape := o.Shape()
	assert.Len(shape, 2)
	shape["extra"] = v.Any()
	assert.Len(o.Shape(), 2, "Shape must return a copy")

	extended := o.Extend(v.Shape{"email": v.String(v.Email())})
	assert.Len(extended.Shape(), 3)
	assert.False(extended.Validate(map[string]any{"name": "neo"}).IsValid())
	assert.True(extended.Validate(map[string]any{"name": "neo", "email": "neo@example.com"}).IsValid())
}

func TestObjectStructTags(t *testing.T) {
	assert := assert.New(t)

	type Base struct {
		ID string `json:"id"`
	}
	type User struct {
		Base
		Name     string `json:"name,omitempty"`
		Password string `json:"-"`
		internal int
	}

	o := v.Object(v.Shape{"id": v.String(), "name": v.String()})
	res := o.Validate(User{Base: Base{ID: "u1"}, Name: "neo", Password: "secret", internal: 1})
	require.True(t, res.IsValid())
	assert.Equal(map[string]any{"id": "u1", "name": "neo"}, res.Value())
}

func TestObjectOf(t *testing.T) {
	assert := assert.New(t)

	scores := v.ObjectOf(v.Number())

	res := scores.Validate(map[string]int{"neo": 1, "trinity": 2})
	require.True(t, res.IsValid())
	assert.Equal(map[string]any{"neo": float64(1), "trinity": float64(2)}, res.Value())

	res = scores.Validate(map[string]any{"neo": 1, "smith": "x", "oracle": true})
	var badObject *v.BadObjectError
	require.ErrorAs(t, res.Err(), &badObject)
	assert.Len(badObject.Fields, 2)
	assert.Contains(badObject.Fields, "smith")
	assert.Contains(badObject.Fields, "oracle")

	assert.Equal(v.KindValueIsNull, scores.Validate(nil).Err().Kind())
	assert.Equal(v.KindValueIsUndefined, scores.Validate(v.Undefined).Err().Kind())
	assert.Equal(v.KindUnexpectedTypeof, scores.Validate(42).Err().Kind())
}
