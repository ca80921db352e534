package decode_test

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
	"testing"

	"github.com/jdudmesh/validators/decode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	assert := assert.New(t)

	val, err := decode.JSON([]byte(`{"name":"ada","age":36,"tags":["a","b"],"nothing":null}`))
	require.NoError(t, err)

	obj := val.(map[string]any)
	assert.Equal("ada", obj["name"])
	assert.Equal(36.0, obj["age"])
	assert.Equal([]any{"a", "b"}, obj["tags"])
	assert.Contains(obj, "nothing")
	assert.Nil(obj["nothing"])

	_, err = decode.JSON([]byte(`{"name":`))
	assert.ErrorIs(err, decode.ErrMalformedInput)

	_, err = decode.JSON([]byte(`{} {}`))
	assert.ErrorIs(err, decode.ErrMalformedInput)
}

func TestYAML(t *testing.T) {
	assert := assert.New(t)

	val, err := decode.YAML([]byte("name: ada\nage: 36\nnested:\n  1: one\n  two: 2\nlist:\n  - x: 1\n"))
	require.NoError(t, err)

	obj := val.(map[string]any)
	assert.Equal("ada", obj["name"])
	assert.Equal(36, obj["age"])

	nested, ok := obj["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal("one", nested["1"])
	assert.Equal(2, nested["two"])

	list := obj["list"].([]any)
	item, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(1, item["x"])

	_, err = decode.YAML([]byte("a: [1, 2"))
	assert.ErrorIs(err, decode.ErrMalformedInput)
}

func TestBytesAuto(t *testing.T) {
	assert := assert.New(t)

	val, err := decode.Bytes([]byte("  [1, 2]"), decode.FormatAuto)
	require.NoError(t, err)
	assert.Equal([]any{1.0, 2.0}, val)

	val, err = decode.Bytes([]byte("- 1\n- 2\n"), decode.FormatAuto)
	require.NoError(t, err)
	assert.Equal([]any{1, 2}, val)

	_, err = decode.Bytes([]byte("{}"), decode.Format("toml"))
	assert.ErrorIs(err, decode.ErrUnsupportedFormat)
}

func TestReader(t *testing.T) {
	val, err := decode.Reader(strings.NewReader(`{"ok":true}`), decode.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, val)
}

func TestFormats(t *testing.T) {
	assert := assert.New(t)

	f, err := decode.ParseFormat("YML")
	assert.NoError(err)
	assert.Equal(decode.FormatYAML, f)

	f, err = decode.ParseFormat("")
	assert.NoError(err)
	assert.Equal(decode.FormatAuto, f)

	_, err = decode.ParseFormat("xml")
	assert.ErrorIs(err, decode.ErrUnsupportedFormat)

	assert.Equal(decode.FormatJSON, decode.FormatOf("event.JSON"))
	assert.Equal(decode.FormatYAML, decode.FormatOf("/tmp/thread.yaml"))
	assert.Equal(decode.FormatAuto, decode.FormatOf("-"))
}
