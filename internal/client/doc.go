// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It wires the server adapter, the client services, the console input and
// the command dispatcher into a single process lifecycle that ends on quit,
// end of input or SIGINT/SIGTERM.
package client
