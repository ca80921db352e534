package main

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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = filepath.Join("..", "..", "internal", "events", "testdata")

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateFiles(t *testing.T) {
	assert := assert.New(t)

	out, err := run(t, "", "validate",
		filepath.Join(fixtures, "user_joined.json"),
		filepath.Join(fixtures, "message_posted.yaml"),
	)
	require.NoError(t, err)
	assert.Contains(out, "ok   "+filepath.Join(fixtures, "user_joined.json")+" (user.joined 0d5c8c1e-6f0b-4a51-9a0e-2f4f0b6f3a10)")
	assert.Contains(out, "message.posted")
}

func TestValidateReportsIssues(t *testing.T) {
	assert := assert.New(t)

	out, err := run(t, "", "validate", filepath.Join(fixtures, "invalid.json"))
	require.ErrorIs(t, err, errInvalidDocuments)
	assert.Contains(err.Error(), "1 of 1 failed")
	assert.Contains(out, "FAIL")
	assert.Contains(out, "message.body: message body is blank [PredicateError]")
	assert.Contains(out, "message.replies[0].author:")
}

func TestValidateStdinJSONOutput(t *testing.T) {
	assert := assert.New(t)

	out, err := run(t, `{"type":"user.left"}`, "validate", "--output", "json", "-")
	require.Error(t, err)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal("-", reports[0].Source)
	assert.False(reports[0].Valid)
	assert.Equal("BadObjectError", reports[0].Detail["type"])

	paths := make([]string, 0, len(reports[0].Issues))
	for _, issue := range reports[0].Issues {
		paths = append(paths, issue.Path)
	}
	assert.Equal([]string{"at", "id", "userId"}, paths)
}

func TestValidateBadFlags(t *testing.T) {
	_, err := run(t, "", "validate", "--format", "toml", "-")
	assert.Error(t, err)

	_, err = run(t, "", "validate", "--output", "xml", "-")
	assert.Error(t, err)

	out, err := run(t, "", "validate", filepath.Join(fixtures, "missing.json"))
	assert.ErrorIs(t, err, errInvalidDocuments)
	assert.Contains(t, out, "FAIL")
}
