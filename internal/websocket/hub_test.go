package websocket

import (
	"testing"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestClient(room string) *Client {
	return &Client{
		UserID: uuid.New(),
		Room:   room,
		Send:   make(chan []byte, 4),
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	client := newTestClient("team:a")

	hub.Join("team:a", client)
	hub.Join("team:a", client)

	if got := hub.RoomSize("team:a"); got != 1 {
		t.Errorf("RoomSize = %d, want 1", got)
	}
}

func TestLeaveAbsentClientIsNoop(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	member := newTestClient("team:a")
	stranger := newTestClient("team:a")

	hub.Join("team:a", member)
	hub.Leave("team:a", stranger)
	hub.Leave("team:b", member)

	if got := hub.RoomSize("team:a"); got != 1 {
		t.Errorf("RoomSize = %d, want 1", got)
	}
}

func TestBroadcastReachesOnlyRoomMembers(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	a1 := newTestClient("hackathon:1")
	a2 := newTestClient("hackathon:1")
	b1 := newTestClient("hackathon:2")

	hub.Join("hackathon:1", a1)
	hub.Join("hackathon:1", a2)
	hub.Join("hackathon:2", b1)

	hub.Broadcast("hackathon:1", []byte("hello"))

	for _, c := range []*Client{a1, a2} {
		select {
		case got := <-c.Send:
			if string(got) != "hello" {
				t.Errorf("payload = %q, want hello", got)
			}
		default:
			t.Error("room member did not receive broadcast")
		}
	}

	select {
	case <-b1.Send:
		t.Error("other room received broadcast")
	default:
	}
}

func TestBroadcastDropsSlowClient(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	slow := &Client{UserID: uuid.New(), Room: "team:a", Send: make(chan []byte, 1)}
	fast := newTestClient("team:a")

	hub.Join("team:a", slow)
	hub.Join("team:a", fast)

	// Fill the slow client's buffer, then broadcast twice more.
	hub.Broadcast("team:a", []byte("m1"))
	hub.Broadcast("team:a", []byte("m2"))

	if got := hub.RoomSize("team:a"); got != 1 {
		t.Errorf("RoomSize = %d, want 1 after dropping slow client", got)
	}

	// The fast client got both messages.
	if len(fast.Send) != 2 {
		t.Errorf("fast client buffered %d messages, want 2", len(fast.Send))
	}

	// The slow client's channel was closed on drop.
	if _, open := <-slow.Send; !open {
		t.Error("slow client should still drain its first message")
	}
	if _, open := <-slow.Send; open {
		t.Error("slow client channel should be closed")
	}
}

func TestLeaveClosesSendChannel(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	client := newTestClient("team:a")

	hub.Join("team:a", client)
	hub.Leave("team:a", client)

	if _, open := <-client.Send; open {
		t.Error("Send should be closed after Leave")
	}
	if got := hub.RoomSize("team:a"); got != 0 {
		t.Errorf("RoomSize = %d, want 0", got)
	}
}
