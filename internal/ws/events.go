package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	EventProductCreated     = "product_created"
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// Event is the envelope broadcast to every connected client.
type Event struct {
	ID      uuid.UUID   `json:"id"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

// Publish serializes the event and hands it to the broadcast loop. Callers
// run it in a goroutine so request handling never waits on slow clients.
func (h *Hub) Publish(eventType string, payload interface{}) {
	msg, err := json.Marshal(Event{
		ID:      uuid.New(),
		Type:    eventType,
		Payload: payload,
		At:      time.Now().UTC(),
	})
	if err != nil {
		log.WithError(err).Warn("failed to marshal ws event")
		return
	}
	h.Broadcast <- msg
}
