// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-room-chat/internal/service"
)

const (
	// title, divider, divider, input, status
	chromeHeight = 5
	statusTTL    = 2 * time.Second
)

var writeClipboard = clipboard.WriteAll

type roomModel struct {
	room   service.ChatRoom
	sink   *batchSink
	outbox *outbox

	viewport viewport.Model
	input    textinput.Model
	width    int

	messages []string
	status   string
	isError  bool
	left     bool
}

func newRoomModel(room service.ChatRoom, sink *batchSink, box *outbox) roomModel {
	input := textinput.New()
	input.Placeholder = "message"
	input.Prompt = "> "
	input.CharLimit = 1000
	input.Focus()

	return roomModel{
		room:     room,
		sink:     sink,
		outbox:   box,
		viewport: viewport.New(80, 20),
		input:    input,
		width:    80,
	}
}

func (m roomModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.sink.waitForBatch(),
		m.sink.waitForFailure(),
		m.cmdWaitRoomDone(),
	)
}

func (m roomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.viewport.SetContent(renderMessages(m.messages))
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case batchMsg:
		m.applyBatch(msg)
		return m, m.sink.waitForBatch()

	case sendFailedMsg:
		m.setError(fmt.Sprintf("not sent: %s", humanizeServerUnavailableError(msg.err)))
		return m, tea.Batch(m.sink.waitForFailure(), cmdClearStatus())

	case copiedMsg:
		m.setStatus("copied")
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.setError(msg.err.Error())
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		m.isError = false
		return m, nil

	case roomClosedMsg:
		m.left = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m roomModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.leave):
		return m.leave()

	case key.Matches(msg, keys.send):
		raw := m.input.Value()
		text := strings.TrimSpace(raw)
		if text == "" {
			return m, nil
		}
		if text == service.LeaveCommand {
			return m.leave()
		}
		m.input.Reset()
		m.outbox.push(raw)
		return m, nil

	case key.Matches(msg, keys.copyLast):
		if len(m.messages) == 0 {
			m.setStatus("nothing to copy")
			return m, cmdClearStatus()
		}
		return m, cmdCopy(m.messages[len(m.messages)-1])

	case key.Matches(msg, keys.scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// leave only quits the program. The room itself is left by RoomScreen once
// the program has exited, so Update never waits on an in-flight poll.
func (m roomModel) leave() (tea.Model, tea.Cmd) {
	m.left = true
	return m, tea.Quit
}

// applyBatch keeps the last good history when a poll fails.
func (m *roomModel) applyBatch(msg batchMsg) {
	batch := msg.batch

	if batch.Err != nil {
		m.setError(humanizeServerUnavailableError(batch.Err))
		return
	}
	if !batch.Envelope.OK() {
		m.setError(batch.Envelope.Message)
		return
	}
	if m.isError {
		m.status = ""
		m.isError = false
	}

	atBottom := m.viewport.AtBottom()
	m.messages = batch.Texts()
	m.viewport.SetContent(renderMessages(m.messages))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *roomModel) setStatus(status string) {
	m.status = status
	m.isError = false
}

func (m *roomModel) setError(status string) {
	m.status = status
	m.isError = true
}

func (m roomModel) View() string {
	session := m.room.Session()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(
		fmt.Sprintf("room '%s' #%d, user %d", session.RoomName, session.RoomID, session.UserID), m.width)))
	b.WriteString("\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider(m.width))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.status != "" && m.isError:
		b.WriteString(errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	default:
		b.WriteString(helpStyle.Render("enter: send  esc: leave  ctrl+y: copy last  pgup/pgdown: scroll"))
	}

	return b.String()
}

func (m roomModel) cmdWaitRoomDone() tea.Cmd {
	return func() tea.Msg {
		<-m.room.Done()
		return roomClosedMsg{}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
