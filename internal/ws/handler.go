package ws

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/linkboard/backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The panel is served same-origin; the session cookie already
		// gates the route.
		return r.Header.Get("Origin") == "" || sameOrigin(r)
	},
}

func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// Handler upgrades admin event-feed connections. The route is mounted
// behind the session gate, so requests arriving here are authenticated.
type Handler struct {
	hub *Hub
}

// NewHandler creates a new event-feed handler.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeWS handles WebSocket requests from the admin panel.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn(r.Context(), "websocket upgrade failed", map[string]any{
			"error": err.Error(),
		})
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
