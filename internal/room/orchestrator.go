package room

import (
	"sync"
	"time"

	"github.com/shenmao/bigtwo/internal/bot"
	"github.com/shenmao/bigtwo/internal/engine"
	"github.com/sirupsen/logrus"
)

// Orchestrator owns the room registry. It is the only writer of room
// state; the engine itself is pure and retains nothing between calls.
// Rooms are independent — there is no cross-room shared state beyond the
// registry map itself.
type Orchestrator struct {
	mu    sync.Mutex
	rooms map[string]*Room
	log   *logrus.Logger

	// BotDelay computes the computer player's think delay. Overridable in
	// tests; the default follows the difficulty's delay table.
	BotDelay func(level bot.Difficulty, firstMove bool) time.Duration
}

// New creates an empty orchestrator logging through log.
func New(log *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		rooms: make(map[string]*Room),
		log:   log,
		BotDelay: func(level bot.Difficulty, firstMove bool) time.Duration {
			if firstMove {
				return level.StartDelay()
			}
			return level.TurnDelay()
		},
	}
}

// room returns the named room, or nil. Callers lock the returned room
// themselves; the registry lock is not held across room work.
func (o *Orchestrator) room(roomID string) *Room {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rooms[roomID]
}

// Join seats a player in the room, creating it on first join. The first
// joiner becomes host. Joining a full room returns an explicit error that
// the transport relays to the joiner.
func (o *Orchestrator) Join(roomID, playerID, name string, send SendFunc) error {
	o.mu.Lock()
	r, ok := o.rooms[roomID]
	if !ok {
		r = &Room{
			ID:         roomID,
			log:        o.log.WithField("room", roomID),
			difficulty: bot.DefaultDifficulty,
			delayFn:    func(level bot.Difficulty, firstMove bool) time.Duration { return o.BotDelay(level, firstMove) },
		}
		o.rooms[roomID] = r
	}
	o.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return RoomError("room is closing")
	}
	if _, s := r.seatOf(playerID); s != nil {
		return RoomError("already seated in this room")
	}
	if len(r.seats) >= engine.NumSeats {
		return RoomError("room is full")
	}

	seat := &Seat{
		ID:        playerID,
		Name:      name,
		Host:      len(r.seats) == 0,
		Connected: true,
		send:      send,
	}
	r.seats = append(r.seats, seat)
	r.log.WithFields(logrus.Fields{"player": name, "host": seat.Host}).Info("player joined")
	r.broadcastRoomUpdate()
	return nil
}

// SetDifficulty changes the room's computer-player difficulty. Host-only:
// a non-host sender or unknown level is a silent no-op, since the control
// should have been disabled client-side.
func (o *Orchestrator) SetDifficulty(roomID, playerID, level string) {
	r := o.room(roomID)
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, seat := r.seatOf(playerID)
	if seat == nil || !seat.Host {
		return
	}
	d, ok := bot.ParseDifficulty(level)
	if !ok {
		return
	}
	r.difficulty = d
	r.log.WithField("difficulty", d.String()).Info("difficulty changed")
	r.broadcast(Event{Type: EventDifficultyUpdate, Difficulty: d.String()})
	r.broadcastRoomUpdate()
}

// StartGame deals a new game (or a rematch with carried scores), filling
// empty seats with computer players first. Host-only, silent no-op for
// anyone else or while a game is still running.
func (o *Orchestrator) StartGame(roomID, playerID string) {
	r := o.room(roomID)
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, seat := r.seatOf(playerID)
	if seat == nil || !seat.Host {
		return
	}
	if r.state != nil && !r.state.Finished {
		return
	}
	r.startGame(uint64(time.Now().UnixNano()))
}

// PlayHand routes a play (cards) or pass (nil) intent from a seated human
// to the engine. Rejections go back to the originating seat only; the
// room state is untouched by a rejected intent.
func (o *Orchestrator) PlayHand(roomID, playerID string, cards []engine.Card) {
	r := o.room(roomID)
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	seatIdx, seat := r.seatOf(playerID)
	if seat == nil || seat.Computer || r.state == nil {
		return
	}
	if err := r.applyIntent(seatIdx, cards); err != nil {
		r.sendToSeat(seat, Event{Type: EventError, Message: err.Error()})
	}
}

// Leave handles a disconnect. In the lobby the seat is removed; mid-game
// it stays (the game continues with the seat unresponsive, since resume is
// out of scope) but loses its connection. When the last human is gone the
// room is torn down along with its computer seats and any pending timer.
func (o *Orchestrator) Leave(roomID, playerID string) {
	r := o.room(roomID)
	if r == nil {
		return
	}

	r.mu.Lock()
	idx, seat := r.seatOf(playerID)
	if seat == nil || seat.Computer {
		r.mu.Unlock()
		return
	}

	gameActive := r.state != nil && !r.state.Finished
	if gameActive {
		seat.Connected = false
		seat.send = nil
	} else {
		r.seats = append(r.seats[:idx], r.seats[idx+1:]...)
	}

	if seat.Host {
		seat.Host = false
		for _, s := range r.seats {
			if !s.Computer && s.Connected {
				s.Host = true
				break
			}
		}
	}

	r.log.WithField("player", seat.Name).Info("player left")

	if r.connectedHumans() == 0 {
		r.closed = true
		r.stopBotTimer()
		r.mu.Unlock()

		o.mu.Lock()
		delete(o.rooms, roomID)
		o.mu.Unlock()
		o.log.WithField("room", roomID).Info("room discarded")
		return
	}

	r.broadcastRoomUpdate()
	r.mu.Unlock()
}

// RoomError is an orchestrator-level rejection (capacity, liveness).
type RoomError string

func (e RoomError) Error() string { return string(e) }
