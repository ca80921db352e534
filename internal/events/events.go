// Package events defines the chat events accepted by vcheck, the schemas
// that check them, and a dispatcher that routes validated events to a
// Handler.
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
	"time"

	"github.com/google/uuid"
)

const (
	TypeUserJoined    = "user.joined"
	TypeUserLeft      = "user.left"
	TypeMessagePosted = "message.posted"
)

type Event interface {
	EventID() uuid.UUID
	EventType() string
}

// Envelope carries the fields shared by every event.
type Envelope struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

func (e Envelope) EventID() uuid.UUID {
	return e.ID
}

func (e Envelope) EventType() string {
	return e.Type
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type UserJoined struct {
	Envelope
	User User `json:"user"`
}

type UserLeft struct {
	Envelope
	UserID uuid.UUID `json:"userId"`
	Reason string    `json:"reason"`
}

// Message is a node in a thread; replies nest without limit.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Author  uuid.UUID `json:"author"`
	Body    string    `json:"body"`
	Tags    []string  `json:"tags,omitempty"`
	Replies []Message `json:"replies,omitempty"`
}

type MessagePosted struct {
	Envelope
	Channel  string    `json:"channel"`
	Priority string    `json:"priority"`
	Geo      []float64 `json:"geo,omitempty"`
	Message  Message   `json:"message"`
}
