// Package decode turns raw input (JSON or YAML text, HTTP requests) into
// plain Go values ready for validation, and binds validated values into
// typed structs.
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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatOf guesses the format of a file from its extension.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// JSON decodes a single JSON document. Objects become map[string]any,
// arrays []any and numbers float64.
func JSON(data []byte) (any, error) {
	var val any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&val); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON document", ErrMalformedInput)
	}
	return val, nil
}

// YAML decodes a single YAML document. Mappings are normalised to
// map[string]any so the result looks like decoded JSON.
func YAML(data []byte) (any, error) {
	var val any
	if err := yaml.Unmarshal(data, &val); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return normalise(val), nil
}

// Bytes decodes data in the given format. FormatAuto picks JSON when the
// document starts with '{' or '[' and YAML otherwise.
func Bytes(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return JSON(data)
	case FormatYAML:
		return YAML(data)
	case FormatAuto, "":
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			return JSON(data)
		}
		return YAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func Reader(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Bytes(data, format)
}

func normalise(val any) any {
	switch val := val.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalise(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalise(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalise(item)
		}
		return val
	}
	return val
}
