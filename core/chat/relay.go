package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ethiopulse/backend/core"
)

type (
	// DeliverFunc pushes a message down one live connection. Implementations
	// must not block; a slow consumer is the transport layer's problem.
	DeliverFunc func(Message)

	// Connection is one live client session against the relay.
	// It may be a member of zero or more rooms at a time.
	Connection struct {
		ID      string
		deliver DeliverFunc
		rooms   map[string]struct{} // guarded by Relay.mu
	}

	// Relay tracks room membership and fans out messages to room members.
	// Rooms have no independent existence: a room is the set of connections
	// currently joined to it, and membership state dies with the relay.
	Relay struct {
		mu    sync.Mutex
		rooms map[string]map[string]*Connection // room name -> connection ID -> connection
		conns map[string]*Connection

		logger core.Logger

		nowFunc func() time.Time // mockable
	}
)

func NewRelay(logger core.Logger) *Relay {
	return &Relay{
		rooms:   make(map[string]map[string]*Connection),
		conns:   make(map[string]*Connection),
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Connect registers a new connection with an empty room set.
// deliver is invoked for every message fanned out to this connection.
func (r *Relay) Connect(deliver DeliverFunc) *Connection {
	conn := &Connection{
		ID:      uuid.New().String(),
		deliver: deliver,
		rooms:   make(map[string]struct{}),
	}

	r.mu.Lock()
	r.conns[conn.ID] = conn
	r.mu.Unlock()

	r.logger.Debug("relay: connection " + conn.ID + " opened")
	return conn
}

// JoinRoom adds conn to the member set of room, creating the room implicitly
// if it has no members yet. Joining a room already joined is a no-op.
func (r *Relay) JoinRoom(conn *Connection, room string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[conn.ID]; !ok {
		return // already disconnected
	}
	if _, ok := conn.rooms[room]; ok {
		return
	}

	members, ok := r.rooms[room]
	if !ok {
		members = make(map[string]*Connection)
		r.rooms[room] = members
	}
	members[conn.ID] = conn
	conn.rooms[room] = struct{}{}

	r.logger.Debug("relay: connection " + conn.ID + " joined room " + room)
}

// Broadcast builds a Message and delivers it to every connection currently in
// the room's member set, including the sender. Broadcasting to a room with no
// members is a no-op. A broadcast with no room or no text is dropped.
func (r *Relay) Broadcast(conn *Connection, room, senderID, senderName, text string) {
	if room == "" || text == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok || len(members) == 0 {
		return
	}

	msg := Message{
		ID:         uuid.New().String(),
		Room:       room,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		Timestamp:  timestamp(r.nowFunc()),
	}
	for _, member := range members {
		member.deliver(msg)
	}
}

// Disconnect removes conn from every room's member set and discards it.
// Remaining room members are not notified of the departure.
func (r *Relay) Disconnect(conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[conn.ID]; !ok {
		return
	}
	delete(r.conns, conn.ID)

	for room := range conn.rooms {
		if members, ok := r.rooms[room]; ok {
			delete(members, conn.ID)
			if len(members) == 0 {
				delete(r.rooms, room)
			}
		}
	}
	conn.rooms = make(map[string]struct{})

	r.logger.Debug("relay: connection " + conn.ID + " closed")
}

// RoomSize reports the number of connections currently joined to room.
func (r *Relay) RoomSize(room string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms[room])
}
