package tui

import "github.com/MKhiriev/go-room-chat/models"

type batchMsg struct {
	batch models.MessageBatch
}

type sendFailedMsg struct {
	text string
	err  error
}

type roomClosedMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
