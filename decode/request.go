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
	"io"
	"mime"
	"net/http"
	"net/url"
)

const DefaultMaxBodySize int64 = 1024 * 1024 * 10

type requestOptions struct {
	maxBodySize int64
}

type RequestOpt func(o *requestOptions)

func WithMaxBodySize(size int64) RequestOpt {
	return func(o *requestOptions) {
		if size > 0 {
			o.maxBodySize = size
		}
	}
}

// Request decodes the body of req according to its Content-Type. JSON and
// YAML bodies decode as documents; url-encoded and multipart forms, and the
// query string of a GET request without a body, decode to a
// map[string]any whose values are a string or, for repeated keys, a []any
// of strings.
func Request(req *http.Request, opts ...RequestOpt) (any, error) {
	o := &requestOptions{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(o)
	}

	if req.Body != nil {
		defer req.Body.Close()
	}
	if req.ContentLength > o.maxBodySize {
		return nil, ErrBodyTooLarge
	}

	contentType := req.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(contentType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
	}

	switch mediaType {
	case "application/json":
		buf, err := readBody(req.Body, o.maxBodySize)
		if err != nil {
			return nil, err
		}
		return JSON(buf)

	case "application/yaml", "application/x-yaml", "text/yaml":
		buf, err := readBody(req.Body, o.maxBodySize)
		if err != nil {
			return nil, err
		}
		return YAML(buf)

	case "application/x-www-form-urlencoded":
		req.Body = http.MaxBytesReader(nil, req.Body, o.maxBodySize)
		if err := req.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: parsing form: %w", ErrMalformedInput, err)
		}
		return formValues(req.PostForm), nil

	case "multipart/form-data":
		if err := req.ParseMultipartForm(o.maxBodySize); err != nil {
			return nil, fmt.Errorf("%w: parsing multipart form: %w", ErrMalformedInput, err)
		}
		return formValues(req.MultipartForm.Value), nil

	default:
		if req.Method == http.MethodGet {
			return formValues(req.URL.Query()), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
}

func readBody(body io.Reader, limit int64) ([]byte, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedInput)
	}
	buf, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if int64(len(buf)) > limit {
		return nil, ErrBodyTooLarge
	}
	return buf, nil
}

func formValues(form url.Values) map[string]any {
	output := make(map[string]any, len(form))
	for k, values := range form {
		if len(values) == 1 {
			output[k] = values[0]
			continue
		}
		items := make([]any, len(values))
		for i, v := range values {
			items[i] = v
		}
		output[k] = items
	}
	return output
}
