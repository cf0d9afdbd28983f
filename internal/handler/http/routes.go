package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Endpoint paths of the chat API.
const (
	RouteUserAdd     = "/user/add"
	RouteUserSearch  = "/user/search"
	RouteUserDelete  = "/user/delete"
	RouteRoomCreate  = "/room/create"
	RouteRoomEnter   = "/room/enter"
	RouteMessageGet  = "/message/get"
	RouteMessageSend = "/message/send"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Post(RouteUserAdd, h.addUser)
	router.Post(RouteUserSearch, h.searchUsers)
	router.Post(RouteUserDelete, h.deleteUser)

	router.Post(RouteRoomCreate, h.createRoom)
	router.Post(RouteRoomEnter, h.enterRoom)

	router.Post(RouteMessageGet, h.getMessages)
	router.Post(RouteMessageSend, h.sendMessage)

	router.NotFound(noSuchEndpoint)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
