// Package server runs the HTTP server of the reference chat server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured request timeout.
package server
