package echoapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ethiopulse/backend/core"
	"github.com/ethiopulse/backend/core/chat"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 1 << 16

	evJoinRoom    = "join-room"
	evSendMessage = "send-message"
	evNewMessage  = "new-message"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the frontend is served from a different origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

type (
	// wsEnvelope is the JSON frame exchanged with clients, in both directions.
	wsEnvelope struct {
		Event string          `json:"event"`
		Room  string          `json:"room,omitempty"`
		Data  json.RawMessage `json:"data,omitempty"`
	}

	wsOutbound struct {
		Event string       `json:"event"`
		Data  chat.Message `json:"data"`
	}

	wsSendMessage struct {
		Room       string `json:"room"`
		SenderID   string `json:"senderId"`
		SenderName string `json:"senderName"`
		Text       string `json:"text"`
	}

	wsClient struct {
		conn   *websocket.Conn
		send   chan []byte
		relay  *chat.Relay
		rconn  *chat.Connection
		logger core.Logger
	}
)

func registerWsAPI(app *echo.Echo, relay *chat.Relay, logger core.Logger) {
	api := wsApi{relay: relay, logger: logger}
	app.GET("/ws", api.serve)
}

type wsApi struct {
	relay  *chat.Relay
	logger core.Logger
}

func (api *wsApi) serve(ctx echo.Context) error {
	conn, err := wsUpgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "upgrading websocket")
	}

	client := &wsClient{
		conn:   conn,
		send:   make(chan []byte, 256),
		relay:  api.relay,
		logger: api.logger,
	}
	client.rconn = api.relay.Connect(client.deliver)

	go client.writePump()
	go client.readPump()
	return nil
}

// deliver runs under the relay's lock; it must never block or call back into
// the relay. A client that cannot keep up has its messages dropped.
func (c *wsClient) deliver(msg chat.Message) {
	b, err := json.Marshal(wsOutbound{Event: evNewMessage, Data: msg})
	if err != nil {
		c.logger.Error("ws: marshalling outbound message", err)
		return
	}
	select {
	case c.send <- b:
	default:
		c.logger.Warn("ws: dropping message for slow client " + c.rconn.ID)
	}
}

func (c *wsClient) readPump() {
	defer func() {
		c.relay.Disconnect(c.rconn)
		close(c.send)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(wsMaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("ws: read error: " + err.Error())
			}
			return
		}

		var env wsEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.logger.Debug("ws: dropping malformed frame: " + err.Error())
			continue
		}

		switch env.Event {
		case evJoinRoom:
			c.relay.JoinRoom(c.rconn, env.Room)
		case evSendMessage:
			var data wsSendMessage
			if err := json.Unmarshal(env.Data, &data); err != nil {
				c.logger.Debug("ws: dropping malformed send-message frame: " + err.Error())
				continue
			}
			c.relay.Broadcast(c.rconn, data.Room, data.SenderID, data.SenderName, data.Text)
		default:
			c.logger.Debug("ws: ignoring unknown event " + env.Event)
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
