// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	input "github.com/tcnksm/go-input"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/service"
	"github.com/MKhiriev/go-room-chat/models"
)

// Operator commands.
const (
	CmdNew    = "new"
	CmdSearch = "search"
	CmdDelete = "del"
	CmdCreate = "create"
	CmdEnter  = "enter"
	CmdHelp   = "help"
	CmdQuit   = "quit"
)

var commandAliases = map[string]string{
	"h": CmdHelp,
	"q": CmdQuit,
}

var helpText = []struct {
	command string
	about   string
}{
	{CmdNew, "create a user account"},
	{CmdSearch, "search users by id and/or name (blank means any)"},
	{CmdDelete, "delete a user account"},
	{CmdCreate, "create a chat room"},
	{CmdEnter, "enter a chat room, " + service.LeaveCommand + " leaves it"},
	{CmdHelp + ", h", "show this help"},
	{CmdQuit + ", q", "exit the client"},
}

// LineInput is the operator input of the dispatcher. [Feed] implements it.
type LineInput interface {
	io.Reader
	service.LineSource
	Closed() bool
}

// Dispatcher reads operator commands and routes them to the client
// services. Errors of a command are printed and never end the dispatcher.
type Dispatcher struct {
	accounts service.ClientAccountService
	rooms    service.ClientRoomService
	room     RoomRunner

	in  LineInput
	out io.Writer
	ui  *input.UI

	logger *logger.Logger
}

func NewDispatcher(services *service.ClientServices, room RoomRunner, in LineInput, out io.Writer, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		accounts: services.AccountService,
		rooms:    services.RoomService,
		room:     room,
		in:       in,
		out:      out,
		ui:       &input.UI{Reader: in, Writer: out},
		logger:   logger,
	}
}

// Run handles commands until quit, the end of input or ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.printHelp()

	for {
		fmt.Fprint(d.out, promptStyle.Render("> "))

		line, err := d.in.ReadLine(ctx)
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			fmt.Fprintln(d.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		command := strings.ToLower(strings.TrimSpace(line))
		if alias, ok := commandAliases[command]; ok {
			command = alias
		}
		if command == "" {
			continue
		}
		if command == CmdQuit {
			fmt.Fprintln(d.out, infoStyle.Render("bye"))
			return nil
		}

		if err = d.dispatch(ctx, command); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
				return nil
			}
			d.logger.Err(err).Str("command", command).Msg("command failed")
			d.printError(err)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, command string) error {
	switch command {
	case CmdNew:
		return d.newUser(ctx)
	case CmdSearch:
		return d.searchUsers(ctx)
	case CmdDelete:
		return d.deleteUser(ctx)
	case CmdCreate:
		return d.createRoom(ctx)
	case CmdEnter:
		return d.enterRoom(ctx)
	case CmdHelp:
		d.printHelp()
		return nil
	default:
		fmt.Fprintln(d.out, warnStyle.Render(fmt.Sprintf("unknown command %q, type help", command)))
		return nil
	}
}

func (d *Dispatcher) newUser(ctx context.Context) error {
	name, err := d.ask("name", requireText)
	if err != nil {
		return err
	}
	password, err := d.ask("password", requireText)
	if err != nil {
		return err
	}

	reply, err := d.accounts.CreateUser(ctx, name, password)
	if err != nil {
		return err
	}

	d.printReply(reply.Message, models.Truthy(reply))
	return nil
}

func (d *Dispatcher) searchUsers(ctx context.Context) error {
	id, err := d.askID("id (blank for any)", true)
	if err != nil {
		return err
	}
	name, err := d.ask("name (blank for any)", nil)
	if err != nil {
		return err
	}

	reply, err := d.accounts.SearchUser(ctx, id, strings.TrimSpace(name))
	if err != nil {
		return err
	}

	users, ok := reply.Data()
	d.printReply(reply.Message, ok)
	for _, user := range users {
		fmt.Fprintf(d.out, "  %d\t%s\n", user.ID, user.Name)
	}
	return nil
}

func (d *Dispatcher) deleteUser(ctx context.Context) error {
	id, err := d.askID("id", false)
	if err != nil {
		return err
	}
	name, err := d.ask("name", requireText)
	if err != nil {
		return err
	}
	password, err := d.ask("password", requireText)
	if err != nil {
		return err
	}

	reply, err := d.accounts.DeleteUser(ctx, id, name, password)
	if err != nil {
		return err
	}

	deleted, ok := reply.Data()
	d.printReply(reply.Message, ok)
	if ok {
		fmt.Fprintf(d.out, "  %d record(s) deleted\n", deleted)
	}
	return nil
}

func (d *Dispatcher) createRoom(ctx context.Context) error {
	name, err := d.ask("room name", requireText)
	if err != nil {
		return err
	}
	password, err := d.ask("room password", requireText)
	if err != nil {
		return err
	}

	outcome, err := d.rooms.CreateRoom(ctx, name, password)
	if err != nil && !errors.Is(err, service.ErrRejected) {
		return err
	}

	d.printReply(outcome.Message, outcome.State == models.RoomCreated)
	return nil
}

func (d *Dispatcher) enterRoom(ctx context.Context) error {
	roomID, err := d.askID("room id", false)
	if err != nil {
		return err
	}
	roomName, err := d.ask("room name", requireText)
	if err != nil {
		return err
	}
	password, err := d.ask("room password", requireText)
	if err != nil {
		return err
	}
	userID, err := d.askID("your user id", false)
	if err != nil {
		return err
	}

	outcome, err := d.rooms.EnterRoom(ctx, models.RoomSession{
		RoomID:   roomID,
		RoomName: roomName,
		Password: password,
		UserID:   userID,
	})
	if err != nil && !errors.Is(err, service.ErrRejected) {
		return err
	}

	d.printReply(outcome.Message, outcome.Bound())
	if !outcome.Bound() {
		return nil
	}

	fmt.Fprintln(d.out, helpStyle.Render(fmt.Sprintf("type messages and press enter, %s to leave", service.LeaveCommand)))
	if err = d.room.RunRoom(ctx, outcome); err != nil {
		return fmt.Errorf("room %d: %w", roomID, err)
	}
	fmt.Fprintln(d.out, infoStyle.Render(fmt.Sprintf("left room '%s'", roomName)))
	return nil
}

// ask prompts until validate accepts the answer. Once the input has ended
// it returns io.EOF instead of prompting forever.
func (d *Dispatcher) ask(query string, validate func(string) error) (string, error) {
	answer, err := d.ui.Ask(promptStyle.Render(query), &input.Options{
		Loop: true,
		ValidateFunc: func(s string) error {
			if d.in.Closed() || validate == nil {
				return nil
			}
			return validate(s)
		},
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimRight(answer, "\r")
	if answer == "" && d.in.Closed() {
		return "", io.EOF
	}
	return answer, nil
}

func (d *Dispatcher) askID(query string, allowBlank bool) (int64, error) {
	answer, err := d.ask(query, func(s string) error {
		_, err := parseID(s, allowBlank)
		return err
	})
	if err != nil {
		return 0, err
	}
	return parseID(answer, allowBlank)
}

func (d *Dispatcher) printReply(message string, ok bool) {
	if ok {
		fmt.Fprintln(d.out, infoStyle.Render(message))
		return
	}
	fmt.Fprintln(d.out, warnStyle.Render(message))
}

func (d *Dispatcher) printError(err error) {
	fmt.Fprintln(d.out, errorStyle.Render("error: "+err.Error()))
}

func (d *Dispatcher) printHelp() {
	fmt.Fprintln(d.out, helpStyle.Render("commands:"))
	for _, h := range helpText {
		fmt.Fprintln(d.out, helpStyle.Render(fmt.Sprintf("  %-9s %s", h.command, h.about)))
	}
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyValue
	}
	return nil
}

// parseID parses a non-negative id. A blank answer is the placeholder id
// when allowBlank is set, otherwise the id must be positive.
func parseID(s string, allowBlank bool) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" && allowBlank {
		return models.PlaceholderID, nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errNotAnInteger
	}
	if id < 0 {
		return 0, errNegativeID
	}
	if id == 0 && !allowBlank {
		return 0, errNonPositiveID
	}
	return id, nil
}
