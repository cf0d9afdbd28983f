// Package http implements the HTTP transport of the reference chat server.
//
// Every endpoint is a POST route whose reply is a models.Envelope JSON
// object. Malformed bodies are answered with 400, rejections by the service
// layer with 200 and an envelope without data, unexpected failures with
// 500. Request tracing, access logging and response compression are
// handled by middleware before requests reach the service layer.
package http
