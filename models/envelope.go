// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Envelope is the uniform wrapper of every chat server reply:
//
//	{"message": "...", "data": <T>}
//
// The data member is optional. Its absence (or an explicit null) means the
// request was rejected or produced an empty result, and Message explains
// why. The payload is kept unexported so callers have to go through
// [Envelope.Data] and cannot mistake a zero value for a present one.
type Envelope[T any] struct {
	// Message is the human-readable status. It is always present.
	Message string

	data    T
	present bool
}

// Success builds an envelope carrying data.
func Success[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Message: message, data: data, present: true}
}

// Failure builds an envelope without data.
func Failure[T any](message string) Envelope[T] {
	return Envelope[T]{Message: message}
}

// Data returns the payload and whether it was present in the reply.
func (e Envelope[T]) Data() (T, bool) {
	return e.data, e.present
}

// OK reports whether the reply carried data.
func (e Envelope[T]) OK() bool {
	return e.present
}

type envelopeJSON struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON implements [json.Marshaler]. The data member is omitted when
// the envelope carries no payload.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	out := envelopeJSON{Message: e.Message}
	if e.present {
		raw, err := json.Marshal(e.data)
		if err != nil {
			return nil, err
		}
		out.Data = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler]. A missing or null data member
// yields an envelope for which OK reports false.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var in envelopeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	var data T
	present := false
	if raw := bytes.TrimSpace(in.Data); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		if err := json.Unmarshal(raw, &data); err != nil {
			return err
		}
		present = true
	}

	e.Message = in.Message
	e.data = data
	e.present = present
	return nil
}

// Truthy reports whether a boolean reply carried data equal to true.
func Truthy(e Envelope[bool]) bool {
	v, ok := e.Data()
	return ok && v
}
