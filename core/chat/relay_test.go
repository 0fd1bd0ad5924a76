package chat

import (
	"testing"
	"time"

	"github.com/ethiopulse/backend/services/logger"
)

type recorder struct {
	msgs []Message
}

func (rec *recorder) deliver(msg Message) {
	rec.msgs = append(rec.msgs, msg)
}

func newTestRelay() *Relay {
	return NewRelay(logsvc.NewNopLogger())
}

func connect(r *Relay) (*Connection, *recorder) {
	rec := new(recorder)
	return r.Connect(rec.deliver), rec
}

func Test_Relay_broadcastReachesAllMembers(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)
	c2, rec2 := connect(relay)
	_, rec3 := connect(relay) // never joins

	relay.JoinRoom(c1, "physics-101")
	relay.JoinRoom(c2, "physics-101")

	relay.Broadcast(c1, "physics-101", "", "Ada", "Hello")

	for i, rec := range []*recorder{rec1, rec2} {
		if len(rec.msgs) != 1 {
			t.Fatalf("member %d: got %d messages; want 1", i+1, len(rec.msgs))
		}
		msg := rec.msgs[0]
		if msg.Room != "physics-101" || msg.SenderName != "Ada" || msg.Text != "Hello" {
			t.Errorf("member %d: unexpected message %+v", i+1, msg)
		}
		if msg.ID == "" {
			t.Errorf("member %d: message has no ID", i+1)
		}
		if _, err := time.Parse(time.RFC3339, msg.Timestamp); err != nil {
			t.Errorf("member %d: bad timestamp %q: %v", i+1, msg.Timestamp, err)
		}
	}
	if len(rec3.msgs) != 0 {
		t.Errorf("non-member received %d messages; want 0", len(rec3.msgs))
	}
}

func Test_Relay_broadcastIncludesSender(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)

	relay.JoinRoom(c1, "maths")
	relay.Broadcast(c1, "maths", "u1", "Abebe", "hi")

	if len(rec1.msgs) != 1 {
		t.Fatalf("sender got %d messages; want 1 (sender is not excluded from fan-out)", len(rec1.msgs))
	}
	if rec1.msgs[0].SenderID != "u1" {
		t.Errorf("senderId = %q; want %q", rec1.msgs[0].SenderID, "u1")
	}
}

func Test_Relay_emptyRoomIsNoop(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)

	// sender never joined; nobody in the room
	relay.Broadcast(c1, "ghost-town", "", "Ada", "anyone?")

	if len(rec1.msgs) != 0 {
		t.Errorf("got %d messages; want 0", len(rec1.msgs))
	}
}

func Test_Relay_memberOnlyReceivesJoinedRooms(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)
	c2, rec2 := connect(relay)

	relay.JoinRoom(c1, "A")
	relay.JoinRoom(c1, "B")
	relay.JoinRoom(c2, "B")

	relay.Broadcast(c1, "A", "", "Ada", "to A")
	relay.Broadcast(c2, "B", "", "Ben", "to B")

	if len(rec1.msgs) != 2 {
		t.Errorf("c1 got %d messages; want 2 (member of both rooms)", len(rec1.msgs))
	}
	if len(rec2.msgs) != 1 {
		t.Fatalf("c2 got %d messages; want 1 (member of B only)", len(rec2.msgs))
	}
	if rec2.msgs[0].Room != "B" {
		t.Errorf("c2 received message for room %q; want %q", rec2.msgs[0].Room, "B")
	}
}

func Test_Relay_disconnectRemovesFromAllRooms(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)
	c2, rec2 := connect(relay)

	relay.JoinRoom(c1, "A")
	relay.JoinRoom(c1, "B")
	relay.JoinRoom(c2, "A")

	relay.Disconnect(c1)

	relay.Broadcast(c2, "A", "", "Ben", "still here?")
	relay.Broadcast(c2, "B", "", "Ben", "echo...") // B is now empty

	if len(rec1.msgs) != 0 {
		t.Errorf("disconnected connection got %d messages; want 0", len(rec1.msgs))
	}
	if len(rec2.msgs) != 1 {
		t.Errorf("c2 got %d messages; want 1", len(rec2.msgs))
	}
	if size := relay.RoomSize("B"); size != 0 {
		t.Errorf("room B size = %d; want 0", size)
	}
}

func Test_Relay_joinIsIdempotent(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)

	relay.JoinRoom(c1, "physics-101")
	relay.JoinRoom(c1, "physics-101")

	if size := relay.RoomSize("physics-101"); size != 1 {
		t.Errorf("room size = %d; want 1", size)
	}

	relay.Broadcast(c1, "physics-101", "", "Ada", "once")
	if len(rec1.msgs) != 1 {
		t.Errorf("got %d messages; want exactly 1 (no duplicate membership)", len(rec1.msgs))
	}
}

func Test_Relay_noRetroactiveDelivery(t *testing.T) {
	relay := newTestRelay()
	c1, _ := connect(relay)
	relay.JoinRoom(c1, "history")
	relay.Broadcast(c1, "history", "", "Ada", "before you arrived")

	late, recLate := connect(relay)
	relay.JoinRoom(late, "history")

	if len(recLate.msgs) != 0 {
		t.Errorf("late joiner got %d messages; want 0 (no history replay)", len(recLate.msgs))
	}
}

func Test_Relay_dropsBlankBroadcasts(t *testing.T) {
	relay := newTestRelay()
	c1, rec1 := connect(relay)
	relay.JoinRoom(c1, "physics-101")

	relay.Broadcast(c1, "", "", "Ada", "no room")
	relay.Broadcast(c1, "physics-101", "", "Ada", "")

	if len(rec1.msgs) != 0 {
		t.Errorf("got %d messages; want 0", len(rec1.msgs))
	}
}

func Test_Relay_ordering(t *testing.T) {
	relay := newTestRelay()
	c1, _ := connect(relay)
	c2, rec2 := connect(relay)
	relay.JoinRoom(c1, "room")
	relay.JoinRoom(c2, "room")

	texts := []string{"first", "second", "third"}
	for _, txt := range texts {
		relay.Broadcast(c1, "room", "", "Ada", txt)
	}

	if len(rec2.msgs) != len(texts) {
		t.Fatalf("got %d messages; want %d", len(rec2.msgs), len(texts))
	}
	for i, txt := range texts {
		if rec2.msgs[i].Text != txt {
			t.Errorf("message %d = %q; want %q (per-room order follows broadcast order)", i, rec2.msgs[i].Text, txt)
		}
	}
}
