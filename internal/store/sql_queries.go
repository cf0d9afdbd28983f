// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-chat/models"
)

const (
	usersTable    = "users"
	roomsTable    = "rooms"
	messagesTable = "messages"
)

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.builder().
		Insert(usersTable).
		Columns("name", "password_hash").
		Values(user.Name, user.Password).
		Suffix("RETURNING id")
}

// findUsersQuery treats a zero id and an empty name as "no filter".
func (db *DB) findUsersQuery(filter models.UserSearch) sq.SelectBuilder {
	q := db.builder().
		Select("id", "name").
		From(usersTable).
		OrderBy("id")

	if filter.ID != models.PlaceholderID {
		q = q.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Name != "" {
		q = q.Where(sq.Eq{"name": filter.Name})
	}

	return q
}

func (db *DB) getUserQuery(id int64) sq.SelectBuilder {
	return db.builder().
		Select("id", "name", "password_hash").
		From(usersTable).
		Where(sq.Eq{"id": id})
}

func (db *DB) deleteUserQuery(id int64) sq.DeleteBuilder {
	return db.builder().
		Delete(usersTable).
		Where(sq.Eq{"id": id})
}

func (db *DB) insertRoomQuery(room models.Room) sq.InsertBuilder {
	return db.builder().
		Insert(roomsTable).
		Columns("name", "password_hash").
		Values(room.Name, room.PasswordHash).
		Suffix("RETURNING id")
}

func (db *DB) getRoomQuery(id int64) sq.SelectBuilder {
	return db.builder().
		Select("id", "name", "password_hash").
		From(roomsTable).
		Where(sq.Eq{"id": id})
}

func (db *DB) insertMessageQuery(msg models.Message) sq.InsertBuilder {
	return db.builder().
		Insert(messagesTable).
		Columns("room_id", "text").
		Values(msg.RoomID, msg.Text)
}

// listMessagesQuery returns the room history in send order.
func (db *DB) listMessagesQuery(roomID int64) sq.SelectBuilder {
	return db.builder().
		Select("text").
		From(messagesTable).
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("id")
}
