package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/menu-api/internal/events"
)

// Handler streams menu lifecycle events to connected clients.
type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
}

type Message struct {
	EventType string      `json:"event-type"`
	Data      interface{} `json:"data"`
}

func NewHandler(log hclog.Logger, eventBus *events.EventBus[any]) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Implement origin checks if necessary
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	// Signals when the client closes the connection
	done := make(chan struct{})
	go h.readPump(conn, done)

	for {
		select {
		case event := <-subscriber:
			var message Message
			switch e := event.(type) {
			case events.DishAdded:
				message = Message{
					EventType: "dish_added",
					Data:      e,
				}
			case events.DishUpdated:
				message = Message{
					EventType: "dish_updated",
					Data:      e,
				}
			case events.DishDeleted:
				message = Message{
					EventType: "dish_deleted",
					Data:      e,
				}
			default:
				h.Log.Warn("Unknown event type", "event", e)
				continue
			}

			payload, err := json.Marshal(message)
			if err != nil {
				h.Log.Error("Error marshalling message", "error", err)
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.Log.Error("Error writing message to WebSocket", "error", err)
				// Connection might be closed, exit the loop
				return
			}
		case <-done:
			h.Log.Info("WebSocket connection closed by the client")
			return
		}
	}
}

func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			break
		}
	}
}
