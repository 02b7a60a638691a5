package realtime

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"gochat/internal/common"
)

var _ common.Broadcaster = (*Hub)(nil)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// subscription is a client control frame: join or leave a room.
type subscription struct {
	Action string `json:"action"`
	RoomID string `json:"roomId"`
}

// WSHandler upgrades authenticated requests and runs the read loop that
// manages the session's room subscriptions.
type WSHandler struct {
	hub *Hub
}

func NewWSHandler(hub *Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade for %s: %v", userID, err)
		return
	}

	conn := NewConnection(userID, ws)
	h.hub.Attach(conn)
	defer func() {
		h.hub.Detach(conn)
		conn.Close(websocket.CloseNormalClosure, "bye")
	}()

	for {
		_, frame, err := ws.ReadMessage()
		if err != nil {
			return
		}

		var sub subscription
		if err := json.Unmarshal(frame, &sub); err != nil || sub.RoomID == "" {
			continue
		}
		switch sub.Action {
		case "join":
			h.hub.Join(sub.RoomID, conn)
		case "leave":
			h.hub.Leave(sub.RoomID, conn)
		}
	}
}
