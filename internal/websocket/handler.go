package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs wires a fresh connection into the hub and blocks until the
// connection drops. onMessage receives every inbound chat message.
func ServeWs(hub *Hub, conn *websocket.Conn, userID uuid.UUID, room string, onMessage func(content string)) {
	client := &Client{
		Hub:       hub,
		Conn:      conn,
		UserID:    userID,
		Room:      room,
		Send:      make(chan []byte, 256),
		OnMessage: onMessage,
	}
	hub.Join(room, client)

	go client.writePump()
	client.readPump()
}
