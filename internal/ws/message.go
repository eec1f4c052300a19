// Package ws adapts the room orchestrator to websocket clients. It owns
// nothing but connections: every intent is delegated to the orchestrator
// and every room event is written back on the seat's connection.
package ws

import "github.com/shenmao/bigtwo/internal/engine"

// Client message types.
const (
	MsgJoinRoom      = "join_room"
	MsgSetDifficulty = "set_difficulty"
	MsgStartGame     = "start_game"
	MsgPlayHand      = "play_hand"
)

// ClientMessage is the flat envelope read from a connection. Fields are
// populated per Type; a play_hand with null cards is a pass.
type ClientMessage struct {
	Type       string        `json:"type"`
	RoomID     string        `json:"roomId,omitempty"`
	Name       string        `json:"name,omitempty"`
	UserID     string        `json:"userId,omitempty"`
	Difficulty string        `json:"difficulty,omitempty"`
	Cards      []engine.Card `json:"cards,omitempty"`
}
