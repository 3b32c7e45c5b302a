// Package ws pushes newly posted messages to connected feed
// subscribers. The feed is read-only; posting goes through the HTTP
// surface, which hands accepted messages to the hub.
package ws

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/pliu/bulletin/internal/models"
)

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Accepted messages to fan out.
	broadcast chan models.Message

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	logger zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan models.Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case msg := <-h.broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				h.logger.Error().Err(err).Msg("marshal feed message")
				continue
			}

			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow subscriber; drop it rather than block the hub
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast queues a message for delivery to every subscriber. It
// blocks until the hub picks it up, so the hub must be running.
func (h *Hub) Broadcast(msg models.Message) {
	h.broadcast <- msg
}
