// Package room implements the multi-room session layer: seat and host
// management, difficulty settings, game lifecycle, computer-turn
// scheduling, and the broadcast contract consumed by the transport layer.
package room

// EventType names a room-to-client event.
type EventType string

const (
	// EventRoomUpdate carries the seat list and difficulty. Broadcast to the
	// whole room on every membership or setting change.
	EventRoomUpdate EventType = "room_update"
	// EventDifficultyUpdate carries just the new difficulty level.
	EventDifficultyUpdate EventType = "difficulty_update"
	// EventGameStart is sent privately to each human seat with that seat's
	// own index and view of the fresh deal.
	EventGameStart EventType = "game_start"
	// EventStateUpdate carries a seat's view of the state after every
	// accepted turn.
	EventStateUpdate EventType = "state_update"
	// EventError relays a rejection reason to the originating seat only.
	EventError EventType = "error"
)

// SeatInfo is one seat's public description in a room snapshot.
type SeatInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Host      bool   `json:"isHost"`
	Computer  bool   `json:"isComputer"`
	Connected bool   `json:"connected"`
}

// Event is the standard structure sent to clients. Fields are populated
// per type; unused ones are omitted from the wire form.
type Event struct {
	Type       EventType  `json:"type"`
	Seats      []SeatInfo `json:"seats,omitempty"`
	Difficulty string     `json:"difficulty,omitempty"`
	SeatIndex  *int       `json:"playerIndex,omitempty"`
	State      *StateView `json:"state,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// SendFunc delivers an event to one connected client. Implementations must
// be safe to call from room goroutines and must not block on slow peers.
type SendFunc func(Event)
