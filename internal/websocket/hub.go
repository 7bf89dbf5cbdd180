package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"yolcu-backend/internal/pkg/logger"
)

const relayChannel = "room_events"

// Hub tracks websocket clients per chat room and fans messages out to them.
// Rooms are plain strings ("hackathon:<id>", "team:<id>"). When a Redis
// client is supplied, broadcasts are also relayed through a pub/sub channel
// so clients connected to other instances receive them.
type Hub struct {
	rooms map[string][]*Client
	mu    sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		rooms:  make(map[string][]*Client),
		rdb:    rdb,
		logger: log,
	}
}

// Run starts the cross-instance relay subscriber. It blocks and is intended
// for a dedicated goroutine; without Redis it is a no-op.
func (h *Hub) Run() {
	if h.rdb == nil {
		return
	}
	h.subscribeToRedis()
}

// Join registers a client in a room. Joining twice is a no-op.
func (h *Hub) Join(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.rooms[room] {
		if c == client {
			return
		}
	}
	h.rooms[room] = append(h.rooms[room], client)

	h.logger.Info("Hub", "client joined room", map[string]interface{}{
		"room":    room,
		"user_id": client.UserID.String(),
	})
}

// Leave removes a client from a room and closes its send channel. Leaving a
// room the client is not in is a no-op.
func (h *Hub) Leave(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(room, client)
}

func (h *Hub) removeLocked(room string, client *Client) {
	clients, ok := h.rooms[room]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.rooms[room] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast delivers a payload to every client in the room. With Redis
// configured the payload goes through the relay channel and comes back via
// the subscriber (including to this instance); without it, delivery is
// direct. A client whose send buffer is full is dropped from the room rather
// than blocking the rest.
func (h *Hub) Broadcast(room string, payload []byte) {
	if h.rdb != nil {
		relay, _ := json.Marshal(relayEnvelope{Room: room, Message: payload})
		h.rdb.Publish(context.Background(), relayChannel, relay)
		return
	}
	h.broadcastLocal(room, payload)
}

func (h *Hub) broadcastLocal(room string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.rooms[room]
	var dropped []*Client
	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			dropped = append(dropped, client)
		}
	}
	for _, client := range dropped {
		h.logger.Warn("Hub", "send buffer full, dropping client", map[string]interface{}{
			"room":    room,
			"user_id": client.UserID.String(),
		})
		h.removeLocked(room, client)
	}
}

// RoomSize reports the current number of local clients in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

type relayEnvelope struct {
	Room    string          `json:"room"`
	Message json.RawMessage `json:"message"`
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, relayChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope relayEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			h.logger.Error("Hub", "relay message parse error", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		h.broadcastLocal(envelope.Room, envelope.Message)
	}
}
