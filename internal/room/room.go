package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenmao/bigtwo/internal/bot"
	"github.com/shenmao/bigtwo/internal/engine"
	"github.com/sirupsen/logrus"
)

// Seat is one of up to four places in a room: a connected human or a
// synthesized computer player.
type Seat struct {
	ID        string // stable identity supplied by the client
	Name      string
	Host      bool
	Computer  bool
	Connected bool
	send      SendFunc // nil for computer seats
}

// Room holds the seats, difficulty setting and current game of one room.
// All mutations go through mu — that is the single serialization point the
// engine's purity relies on.
type Room struct {
	ID string

	mu         sync.Mutex
	log        *logrus.Entry
	seats      []*Seat
	difficulty bot.Difficulty
	state      *engine.GameState

	// generation increments on every new deal; a pending computer-turn
	// callback compares it before acting so a rematch or teardown
	// invalidates stale timers.
	generation int
	botTimer   *time.Timer
	closed     bool

	delayFn func(level bot.Difficulty, firstMove bool) time.Duration
}

// Locking discipline: every exported method locks mu; unexported helpers
// assume the lock is held by the caller, as noted.

// snapshotSeats builds the public seat list. Assumes lock is held.
func (r *Room) snapshotSeats() []SeatInfo {
	seats := make([]SeatInfo, len(r.seats))
	for i, s := range r.seats {
		seats[i] = SeatInfo{
			ID:        s.ID,
			Name:      s.Name,
			Host:      s.Host,
			Computer:  s.Computer,
			Connected: s.Connected,
		}
	}
	return seats
}

// broadcast sends an event to every connected human seat. Assumes lock is
// held.
func (r *Room) broadcast(ev Event) {
	for _, s := range r.seats {
		if s.send != nil && s.Connected {
			s.send(ev)
		}
	}
}

// sendToSeat delivers an event to a single seat if it can receive.
// Assumes lock is held.
func (r *Room) sendToSeat(seat *Seat, ev Event) {
	if seat.send != nil && seat.Connected {
		seat.send(ev)
	}
}

// broadcastRoomUpdate announces the seat list and difficulty. Assumes lock
// is held.
func (r *Room) broadcastRoomUpdate() {
	r.broadcast(Event{
		Type:       EventRoomUpdate,
		Seats:      r.snapshotSeats(),
		Difficulty: r.difficulty.String(),
	})
}

// broadcastState sends each human seat its own view of the current state.
// Assumes lock is held.
func (r *Room) broadcastState() {
	if r.state == nil {
		return
	}
	for i, s := range r.seats {
		if s.Computer {
			continue
		}
		r.sendToSeat(s, Event{Type: EventStateUpdate, State: buildView(r.state, i)})
	}
}

// seatOf finds a seat and its index by stable identity. Assumes lock is
// held.
func (r *Room) seatOf(playerID string) (int, *Seat) {
	for i, s := range r.seats {
		if s.ID == playerID {
			return i, s
		}
	}
	return -1, nil
}

// connectedHumans counts human seats with a live connection. Assumes lock
// is held.
func (r *Room) connectedHumans() int {
	n := 0
	for _, s := range r.seats {
		if !s.Computer && s.Connected {
			n++
		}
	}
	return n
}

// fillComputerSeats tops the room up to four seats with computer players.
// Happens only at game start, never at join time. Assumes lock is held.
func (r *Room) fillComputerSeats() {
	for i := len(r.seats); i < engine.NumSeats; i++ {
		r.seats = append(r.seats, &Seat{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("CPU %d (%s)", i+1, r.difficulty),
			Computer: true,
		})
	}
}

// startGame deals a fresh game, carrying seat scores forward from the
// previous one, and kicks off the first computer turn if the starter is a
// bot. Assumes lock is held.
func (r *Room) startGame(seed uint64) {
	r.fillComputerSeats()
	r.broadcastRoomUpdate()

	var descriptors [engine.NumSeats]engine.SeatDescriptor
	for i, s := range r.seats {
		score := 0
		if r.state != nil {
			score = r.state.Players[i].Score
		}
		descriptors[i] = engine.SeatDescriptor{
			ID:    s.ID,
			Name:  s.Name,
			Human: !s.Computer,
			Score: score,
		}
	}

	state := engine.NewGame(descriptors, seed)
	r.state = &state
	r.generation++
	r.stopBotTimer()

	r.log.WithFields(logrus.Fields{
		"starter":    state.Players[state.Current].Name,
		"difficulty": r.difficulty.String(),
	}).Info("game started")

	for i, s := range r.seats {
		if s.Computer {
			continue
		}
		idx := i
		r.sendToSeat(s, Event{
			Type:      EventGameStart,
			SeatIndex: &idx,
			State:     buildView(r.state, i),
		})
	}

	r.maybeScheduleBot(true)
}

// applyIntent routes one seat's play or pass through the engine, relaying
// a rejection privately and broadcasting the new state on success.
// Assumes lock is held.
func (r *Room) applyIntent(seatIdx int, cards []engine.Card) error {
	next, err := engine.ApplyIntent(*r.state, seatIdx, cards)
	if err != nil {
		return err
	}
	r.state = &next
	r.broadcastState()
	if next.Finished {
		r.stopBotTimer()
		r.log.WithField("winner", next.Winners).Info("game finished")
		return nil
	}
	r.maybeScheduleBot(false)
	return nil
}

// maybeScheduleBot arms a one-shot timer for the acting seat when it is a
// computer player. Assumes lock is held.
func (r *Room) maybeScheduleBot(firstMove bool) {
	if r.state == nil || r.state.Finished {
		return
	}
	seatIdx := r.state.Current
	if seatIdx >= len(r.seats) || !r.seats[seatIdx].Computer {
		return
	}
	r.stopBotTimer()

	gen := r.generation
	turns := len(r.state.History)
	delay := r.delayFn(r.difficulty, firstMove)
	r.botTimer = time.AfterFunc(delay, func() {
		r.runBotTurn(gen, seatIdx, turns)
	})
}

// stopBotTimer cancels any pending computer turn. The generation check in
// runBotTurn already makes a stale fire harmless; stopping is to avoid
// waking on a finished game or deleted room. Assumes lock is held.
func (r *Room) stopBotTimer() {
	if r.botTimer != nil {
		r.botTimer.Stop()
		r.botTimer = nil
	}
}

// runBotTurn is the timer callback for a scheduled computer turn. It
// re-validates that the room and game still exist and that the scheduled
// seat is still to act on the same turn before mutating — a human
// disconnect or an overlapping timer could otherwise produce a stale move.
func (r *Room) runBotTurn(gen, seatIdx, turns int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.state == nil || r.generation != gen || r.state.Finished {
		return
	}
	if r.state.Current != seatIdx || len(r.state.History) != turns {
		return
	}
	if seatIdx >= len(r.seats) || !r.seats[seatIdx].Computer {
		return
	}

	firstAction := len(r.state.History) == 0
	hand := r.state.Players[seatIdx].Hand
	cards := bot.Decide(hand, r.state.Table, firstAction, r.difficulty)

	if err := r.applyIntent(seatIdx, cards); err != nil {
		// The heuristic never fabricates illegal moves, but if the engine
		// disagrees the seat falls back rather than stalling the room.
		fallback := []engine.Card(nil)
		if firstAction {
			fallback = []engine.Card{engine.OpeningCard}
		}
		if err := r.applyIntent(seatIdx, fallback); err != nil {
			r.log.WithError(err).WithField("seat", seatIdx).Error("computer fallback move rejected")
		}
	}
}
