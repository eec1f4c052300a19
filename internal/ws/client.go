package ws

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/shenmao/bigtwo/internal/room"
	"github.com/sirupsen/logrus"
)

const (
	writeTimeout  = 10 * time.Second
	sendQueueSize = 32
)

// client is one websocket connection and its seat, if joined.
type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	log  *logrus.Entry

	// out serializes writes: websocket connections allow one concurrent
	// writer, and room callbacks must never block on a slow peer.
	out    chan room.Event
	userID string
	roomID string
}

func newClient(conn *websocket.Conn, log *logrus.Logger) *client {
	id := uuid.New()
	return &client{
		id:   id,
		conn: conn,
		log:  log.WithField("conn", id),
		out:  make(chan room.Event, sendQueueSize),
	}
}

// send queues an event for the writer goroutine. Called from room
// goroutines with the room lock held, so it must not block: a peer whose
// queue is full loses events and will be closed by its own write failure.
func (c *client) send(ev room.Event) {
	select {
	case c.out <- ev:
	default:
		c.log.WithField("event", ev.Type).Warn("send queue full, dropping event")
	}
}

// writeLoop drains the outbound queue onto the connection until ctx ends.
func (c *client) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.out:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, c.conn, ev)
			cancel()
			if err != nil {
				c.log.WithError(err).Debug("write failed, closing")
				c.conn.Close(websocket.StatusInternalError, "write failure")
				return
			}
		}
	}
}

// readLoop reads and dispatches client messages until the peer hangs up.
func (c *client) readLoop(ctx context.Context, orch *room.Orchestrator) {
	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, c.conn, &msg); err != nil {
			return
		}
		c.dispatch(msg, orch)
	}
}

func (c *client) dispatch(msg ClientMessage, orch *room.Orchestrator) {
	switch msg.Type {
	case MsgJoinRoom:
		if c.roomID != "" {
			return // one room per connection
		}
		userID := msg.UserID
		if userID == "" {
			userID = c.id.String()
		}
		if err := orch.Join(msg.RoomID, userID, msg.Name, c.send); err != nil {
			c.send(room.Event{Type: room.EventError, Message: err.Error()})
			return
		}
		c.userID = userID
		c.roomID = msg.RoomID

	case MsgSetDifficulty:
		if c.roomID == "" {
			return
		}
		orch.SetDifficulty(c.roomID, c.userID, msg.Difficulty)

	case MsgStartGame:
		if c.roomID == "" {
			return
		}
		orch.StartGame(c.roomID, c.userID)

	case MsgPlayHand:
		if c.roomID == "" {
			return
		}
		orch.PlayHand(c.roomID, c.userID, msg.Cards)

	default:
		c.log.WithField("type", msg.Type).Debug("unknown message type")
	}
}
