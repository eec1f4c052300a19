package ws

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"github.com/shenmao/bigtwo/internal/room"
	"github.com/sirupsen/logrus"
)

// Server upgrades HTTP requests to websocket sessions and runs one client
// per connection.
type Server struct {
	log  *logrus.Logger
	orch *room.Orchestrator
}

// NewServer wires the transport to an orchestrator.
func NewServer(orch *room.Orchestrator, log *logrus.Logger) *Server {
	return &Server{log: log, orch: orch}
}

// ServeHTTP handles one websocket session for its whole lifetime. Leaving
// the room is implicit on transport close.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// The game client is served from a separate origin in development.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.log.WithError(err).Debug("websocket accept failed")
		return
	}

	c := newClient(conn, s.log)
	c.log.Info("client connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go c.writeLoop(ctx)

	c.readLoop(ctx, s.orch)

	if c.roomID != "" {
		s.orch.Leave(c.roomID, c.userID)
	}
	conn.Close(websocket.StatusNormalClosure, "")
	c.log.Info("client disconnected")
}
