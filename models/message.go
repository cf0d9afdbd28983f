// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a single outbound chat line bound to a room.
// It is not retained on the client after it has been sent.
type Message struct {
	Text   string `json:"text"`
	RoomID int64  `json:"room_id"`
}

// MessageBatch is the result of one inbound poll cycle.
//
// Exactly one of Envelope and Err is meaningful: Err is set when the
// transport call failed, otherwise Envelope holds the server reply.
type MessageBatch struct {
	RoomID     int64
	Envelope   Envelope[[]string]
	Err        error
	ReceivedAt time.Time
}

// Texts returns the message texts carried by the batch, or nil when the
// poll failed or the server returned no data.
func (b MessageBatch) Texts() []string {
	if b.Err != nil {
		return nil
	}
	texts, _ := b.Envelope.Data()
	return texts
}
