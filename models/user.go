// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PlaceholderID is the id submitted for records that do not exist yet.
// The server assigns the real identifier on creation.
const PlaceholderID int64 = 0

// User is an account record as exchanged with the chat server.
//
// The id is server-assigned: clients always send [PlaceholderID] when
// creating a user. A user can only be changed by deleting it.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name and search key of the account.
	Name string `json:"name"`

	// Password is passed through to the server as is. It is used by the
	// server as an ownership check on delete and room entry.
	Password string `json:"password"`
}

// UserSearch is the filter sent to user/search. Zero-valued fields are
// passed through unchanged; their meaning is defined by the server.
type UserSearch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
