package tests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ethiopulse/backend/core/chat"
)

type wsEnvelope struct {
	Event string          `json:"event"`
	Room  string          `json:"room,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func wsDial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket.Dial(%s): %v", url, err)
	}
	return conn
}

func wsJoin(t *testing.T, conn *websocket.Conn, room string) {
	if err := conn.WriteJSON(wsEnvelope{Event: "join-room", Room: room}); err != nil {
		t.Fatalf("WriteJSON(join-room): %v", err)
	}
}

func wsSend(t *testing.T, conn *websocket.Conn, room, senderName, text string) {
	data, err := json.Marshal(map[string]string{"room": room, "senderName": senderName, "text": text})
	if err != nil {
		t.Fatalf("json.Marshal(): %v", err)
	}
	if err := conn.WriteJSON(wsEnvelope{Event: "send-message", Data: data}); err != nil {
		t.Fatalf("WriteJSON(send-message): %v", err)
	}
}

func wsReadMessage(t *testing.T, conn *websocket.Conn) chat.Message {
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("ReadJSON(): %v", err)
	}
	if env.Event != "new-message" {
		t.Fatalf("failed! event = %v; want new-message", env.Event)
	}
	var msg chat.Message
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		t.Fatalf("json.Unmarshal(): %v", err)
	}
	return msg
}

func wsExpectSilence(t *testing.T, conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err == nil {
		t.Fatalf("failed! unexpected message: %+v", env)
	}
}

func Test_wsApi_broadcast(t *testing.T) {
	app := setup(t)
	srv := httptest.NewServer(app)
	defer srv.Close()

	sender := wsDial(t, srv)
	defer sender.Close()
	peer := wsDial(t, srv)
	defer peer.Close()
	outsider := wsDial(t, srv)
	defer outsider.Close()

	wsJoin(t, sender, "physics-101")
	wsJoin(t, peer, "physics-101")
	wsJoin(t, outsider, "math-202")

	// joins are processed in order on each connection's read pump; give the
	// slower connections a moment before broadcasting
	time.Sleep(100 * time.Millisecond)

	wsSend(t, sender, "physics-101", "Ada", "Newton's second law?")

	for name, conn := range map[string]*websocket.Conn{"sender": sender, "peer": peer} {
		msg := wsReadMessage(t, conn)
		if msg.Room != "physics-101" {
			t.Errorf("%s: room = %v; want physics-101", name, msg.Room)
		}
		if msg.SenderName != "Ada" {
			t.Errorf("%s: senderName = %v; want Ada", name, msg.SenderName)
		}
		if msg.Text != "Newton's second law?" {
			t.Errorf("%s: text = %v; want Newton's second law?", name, msg.Text)
		}
		if msg.ID == "" || msg.Timestamp == "" {
			t.Errorf("%s: missing id or timestamp: %+v", name, msg)
		}
	}

	// outsider is in another room and must not receive anything
	wsExpectSilence(t, outsider)
}

func Test_wsApi_noReplayOnJoin(t *testing.T) {
	app := setup(t)
	srv := httptest.NewServer(app)
	defer srv.Close()

	sender := wsDial(t, srv)
	defer sender.Close()

	wsJoin(t, sender, "history-9")
	time.Sleep(100 * time.Millisecond)
	wsSend(t, sender, "history-9", "Meron", "The Battle of Adwa was in 1896.")
	_ = wsReadMessage(t, sender)

	// a member joining after the broadcast gets nothing
	late := wsDial(t, srv)
	defer late.Close()
	wsJoin(t, late, "history-9")
	wsExpectSilence(t, late)
}

func Test_wsApi_unknownEventIgnored(t *testing.T) {
	app := setup(t)
	srv := httptest.NewServer(app)
	defer srv.Close()

	conn := wsDial(t, srv)
	defer conn.Close()

	if err := conn.WriteJSON(wsEnvelope{Event: "dance"}); err != nil {
		t.Fatalf("WriteJSON(): %v", err)
	}
	// connection stays usable
	wsJoin(t, conn, "physics-101")
	time.Sleep(100 * time.Millisecond)
	wsSend(t, conn, "physics-101", "Ada", "still here")
	if msg := wsReadMessage(t, conn); msg.Text != "still here" {
		t.Errorf("text = %v; want still here", msg.Text)
	}
}
