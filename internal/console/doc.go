// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console is the line-oriented operator interface of the chat
// client.
//
// A single [Feed] owns standard input and hands out lines both to the
// go-input prompts of the [Dispatcher] and to the outbound chat loop. The
// [Dispatcher] routes operator commands to the client services and starts
// a room runner once a room was entered.
package console
