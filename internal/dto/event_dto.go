package dto

// RoomMessageEvent is published on the bus whenever a room chat message is
// persisted; the consumer fans it out to websocket subscribers of Room.
type RoomMessageEvent struct {
	Room    string              `json:"room"`
	Message ChatMessageResponse `json:"message"`
}
