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
	"context"
	"errors"
	"fmt"
	"log/slog"

	v "github.com/jdudmesh/validators"
	"github.com/jdudmesh/validators/decode"
)

var ErrUnknownEventType = errors.New("unknown event type")

// Handler receives events that passed validation.
type Handler interface {
	UserJoined(ctx context.Context, e UserJoined) error
	UserLeft(ctx context.Context, e UserLeft) error
	MessagePosted(ctx context.Context, e MessagePosted) error
}

type Dispatcher struct {
	handler Handler
	schema  v.Validator
	logger  *slog.Logger
}

type DispatcherOpt func(d *Dispatcher)

func WithLogger(logger *slog.Logger) DispatcherOpt {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSchemaMiddleware wraps the event schema, e.g. to instrument it.
func WithSchemaMiddleware(wrap func(v.Validator) v.Validator) DispatcherOpt {
	return func(d *Dispatcher) {
		d.schema = wrap(d.schema)
	}
}

func NewDispatcher(handler Handler, opts ...DispatcherOpt) *Dispatcher {
	d := &Dispatcher{
		handler: handler,
		schema:  Schema(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Validate checks raw without dispatching it and returns the typed event.
// Invalid input is reported as a validators.ValidationError.
func (d *Dispatcher) Validate(raw any) (Event, error) {
	res := d.schema.Validate(raw)
	if !res.IsValid() {
		return nil, res.Err()
	}

	refined, ok := res.Value().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownEventType, res.Value())
	}

	eventType, _ := refined["type"].(string)
	var (
		event Event
		err   error
	)
	switch eventType {
	case TypeUserJoined:
		var e UserJoined
		err = decode.Bind(refined, &e)
		event = e
	case TypeUserLeft:
		var e UserLeft
		err = decode.Bind(refined, &e)
		event = e
	case TypeMessagePosted:
		var e MessagePosted
		err = decode.Bind(refined, &e)
		event = e
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Dispatch validates raw and passes the typed event to the handler.
func (d *Dispatcher) Dispatch(ctx context.Context, raw any) (Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	event, err := d.Validate(raw)
	if err != nil {
		var verr v.ValidationError
		if errors.As(err, &verr) {
			d.logger.Debug("event rejected", "kind", verr.Kind(), "error", err)
		}
		return nil, err
	}

	switch e := event.(type) {
	case UserJoined:
		err = d.handler.UserJoined(ctx, e)
	case UserLeft:
		err = d.handler.UserLeft(ctx, e)
	case MessagePosted:
		err = d.handler.MessagePosted(ctx, e)
	}
	if err != nil {
		return nil, fmt.Errorf("handling %s: %w", event.EventType(), err)
	}

	d.logger.Debug("event dispatched", "type", event.EventType())
	return event, nil
}
