// Package tui implements the full-screen view of an entered chat room.
//
// The view is a bubbletea program: a viewport with the room history that
// is refreshed by every poll, and a text input that sends a message on
// enter.
package tui
