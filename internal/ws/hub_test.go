package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newFeedServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(conn)
	}))
}

func dialFeed(t *testing.T, srv *httptest.Server, hub *Hub) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client was never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func TestBroadcastDeliversMessage(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	defer srv.Close()

	conn := dialFeed(t, srv, hub)
	defer conn.Close()

	hub.Broadcast(WSMessage{Type: "quiz_saved", Data: map[string]int{"rows": 1}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != "quiz_saved" {
		t.Fatalf("type = %q", msg.Type)
	}
}

func TestBroadcastDropsStalledClient(t *testing.T) {
	hub := NewHub()
	hub.writeWait = 100 * time.Millisecond
	srv := newFeedServer(t, hub)
	defer srv.Close()

	// The client never reads, so the socket buffers eventually fill.
	conn := dialFeed(t, srv, hub)
	defer conn.Close()

	payload := strings.Repeat("x", 1<<20)
	deadline := time.Now().Add(10 * time.Second)
	for hub.Count() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("stalled client was not dropped")
		}
		start := time.Now()
		hub.Broadcast(WSMessage{Type: "quiz_saved", Data: payload})
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Fatalf("broadcast blocked for %v", elapsed)
		}
	}
}

func TestRemoveConnection(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	defer srv.Close()

	conn := dialFeed(t, srv, hub)
	defer conn.Close()

	hub.mu.RLock()
	var registered *websocket.Conn
	for c := range hub.conns {
		registered = c
	}
	hub.mu.RUnlock()

	hub.RemoveConnection(registered)
	if hub.Count() != 0 {
		t.Fatalf("count = %d, want 0", hub.Count())
	}
	// Removing twice is a no-op.
	hub.RemoveConnection(registered)
}
