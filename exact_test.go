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
	"math"
	"testing"

	v "github.com/jdudmesh/validators"
	"github.com/stretchr/testify/assert"
)

func TestExact(t *testing.T) {
	assert := assert.New(t)

	joined := v.Exact("USER_JOINED")
	assert.True(joined.Validate("USER_JOINED").IsValid())

	res := joined.Validate("USER_LEFT")
	var notExact *v.NotExactValueError
	if assert.ErrorAs(res.Err(), &notExact) {
		assert.Equal("USER_JOINED", notExact.Expected)
		assert.Equal("USER_LEFT", notExact.Value())
	}

	undef := v.Exact(v.Undefined)
	assert.True(undef.Validate(v.Undefined).IsValid())
	assert.False(undef.Validate(nil).IsValid())

	null := v.Exact(nil)
	assert.True(null.Validate(nil).IsValid())
	assert.False(null.Validate(v.Undefined).IsValid())
	assert.False(null.Validate(0).IsValid())

	assert.True(v.Exact(true).Validate(true).IsValid())
	assert.False(v.Exact(true).Validate(false).IsValid())
	assert.False(v.Exact(true).Validate("true").IsValid())
}

func TestExactNumbers(t *testing.T) {
	assert := assert.New(t)

	assert.True(v.Exact(1).Validate(float64(1)).IsValid())
	assert.True(v.Exact(int64(3)).Validate(uint8(3)).IsValid())
	assert.False(v.Exact(1).Validate(1.5).IsValid())
	assert.False(v.Exact(1).Validate("1").IsValid())

	assert.True(v.Exact(math.NaN()).Validate(math.NaN()).IsValid())
	assert.True(v.Exact(0.0).Validate(math.Copysign(0, -1)).IsValid())
}

func TestExactReferences(t *testing.T) {
	assert := assert.New(t)

	m := map[string]any{"a": 1}
	assert.True(v.Exact(m).Validate(m).IsValid())
	assert.False(v.Exact(m).Validate(map[string]any{"a": 1}).IsValid())

	s := []any{1, 2}
	assert.True(v.Exact(s).Validate(s).IsValid())
	assert.False(v.Exact(s).Validate(s[:1]).IsValid())

	a, b := 1, 1
	assert.True(v.Exact(&a).Validate(&a).IsValid())
	assert.False(v.Exact(&a).Validate(&b).IsValid())
	assert.False(v.Exact(&a).Validate(1).IsValid())
	assert.False(v.Exact(1).Validate(&a).IsValid())
}

func TestAnyUnknown(t *testing.T) {
	assert := assert.New(t)

	payload := map[string]any{"x": 1}
	for _, validator := range []v.Validator{v.Any(), v.Unknown()} {
		for _, val := range []any{nil, v.Undefined, 1, "a", payload} {
			res := validator.Validate(val)
			assert.True(res.IsValid())
			assert.Equal(val, res.Value())
		}
	}
}

func TestKeyOf(t *testing.T) {
	assert := assert.New(t)

	colors := map[string]int{"red": 1, "green": 2}
	k := v.KeyOf(colors)

	res := k.Validate("red")
	assert.True(res.IsValid())
	assert.Equal("red", res.Value())

	res = k.Validate("blue")
	var missing *v.KeyNotExistError
	if assert.ErrorAs(res.Err(), &missing) {
		assert.Equal("blue", missing.Key)
	}

	res = k.Validate(1)
	assert.Equal(v.KindUnexpectedTypeof, res.Err().Kind())

	fields := v.KeyOf(struct {
		Name  string
		Email string `json:"email"`
	}{})
	assert.True(fields.Validate("Name").IsValid())
	assert.True(fields.Validate("email").IsValid())
	assert.False(fields.Validate("Email").IsValid())
}
