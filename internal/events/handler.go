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
	"log/slog"
	"sync"
)

// LoggingHandler logs every event it receives.
type LoggingHandler struct {
	logger *slog.Logger
}

func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger}
}

func (h *LoggingHandler) UserJoined(ctx context.Context, e UserJoined) error {
	h.logger.InfoContext(ctx, "user joined",
		slog.String("event_id", e.ID.String()),
		slog.String("user_id", e.User.ID.String()),
		slog.String("name", e.User.Name),
		slog.String("role", e.User.Role),
	)
	return nil
}

func (h *LoggingHandler) UserLeft(ctx context.Context, e UserLeft) error {
	h.logger.InfoContext(ctx, "user left",
		slog.String("event_id", e.ID.String()),
		slog.String("user_id", e.UserID.String()),
		slog.String("reason", e.Reason),
	)
	return nil
}

func (h *LoggingHandler) MessagePosted(ctx context.Context, e MessagePosted) error {
	h.logger.InfoContext(ctx, "message posted",
		slog.String("event_id", e.ID.String()),
		slog.String("channel", e.Channel),
		slog.String("priority", e.Priority),
		slog.Int("replies", countReplies(e.Message)),
	)
	return nil
}

func countReplies(m Message) int {
	n := len(m.Replies)
	for _, r := range m.Replies {
		n += countReplies(r)
	}
	return n
}

// Recorder keeps every event in memory, in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) UserJoined(_ context.Context, e UserJoined) error {
	r.record(e)
	return nil
}

func (r *Recorder) UserLeft(_ context.Context, e UserLeft) error {
	r.record(e)
	return nil
}

func (r *Recorder) MessagePosted(_ context.Context, e MessagePosted) error {
	r.record(e)
	return nil
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}
