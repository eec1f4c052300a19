package engine

// NumSeats is the fixed player count of a game.
const NumSeats = 4

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// SeatDescriptor describes a seat for NewGame. Score is carried forward
// from the previous game of the same room on a rematch.
type SeatDescriptor struct {
	ID    string
	Name  string
	Human bool
	Score int
}

// Player is one seat's in-game state. Hand only ever shrinks; Score is
// only touched by end-of-game settlement.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Hand  []Card `json:"hand"`
	Human bool   `json:"isHuman"`
	Score int    `json:"score"`
}

// PlayRecord is one accepted action. A nil Hand records a pass.
type PlayRecord struct {
	Seat int   `json:"seat"`
	Hand *Hand `json:"hand"`
}

// GameState is the complete state of one game. Every accepted intent
// produces a new value; a state that has been handed out is never
// mutated in place.
type GameState struct {
	Players    [NumSeats]Player `json:"players"`
	Current    int              `json:"currentPlayerIndex"`
	Table      *Hand            `json:"tableHand"`
	TableOwner int              `json:"tableOwnerIndex"` // -1 when the table is clear
	History    []PlayRecord     `json:"history"`
	Finished   bool             `json:"isFinished"`
	Winners    []string         `json:"winners"`
}

// ---------------------------------------------------------------------------
// Dealing
// ---------------------------------------------------------------------------

// xorshift64 — inline, no interface.
type xorshift uint64

func (x *xorshift) next() uint64 {
	v := uint64(*x)
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = xorshift(v)
	return v
}

// NewGame shuffles a 52-card deck with the given seed, deals 13 sorted
// cards to each of the four seats, and hands the first turn to whoever
// holds the 3 of clubs.
func NewGame(seats [NumSeats]SeatDescriptor, seed uint64) GameState {
	rng := xorshift(seed)
	if rng == 0 {
		rng = 1 // xorshift can't start at 0
	}

	deck := make([]Card, 0, 52)
	for suit := SuitClub; suit <= SuitSpade; suit++ {
		for rank := RankThree; rank <= RankTwo; rank++ {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	// Fisher-Yates shuffle.
	for i := len(deck) - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}

	var state GameState
	state.TableOwner = -1
	for i := 0; i < NumSeats; i++ {
		hand := SortCards(deck[i*HandSize : (i+1)*HandSize])
		state.Players[i] = Player{
			ID:    seats[i].ID,
			Name:  seats[i].Name,
			Hand:  hand,
			Human: seats[i].Human,
			Score: seats[i].Score,
		}
		for _, c := range hand {
			if c == OpeningCard {
				state.Current = i
			}
		}
	}
	return state
}

// ---------------------------------------------------------------------------
// Turn state machine
// ---------------------------------------------------------------------------

// ApplyIntent applies one seat's play (cards) or pass (nil/empty) to the
// state and returns the successor state. On a RuleError the input state is
// returned unchanged — failure never partially mutates.
func ApplyIntent(state GameState, seat int, cards []Card) (GameState, error) {
	if seat != state.Current {
		return state, ErrNotYourTurn
	}
	if state.Finished {
		return state, ErrGameFinished
	}

	if len(cards) == 0 {
		return applyPass(state, seat)
	}
	return applyPlay(state, seat, cards)
}

func applyPass(state GameState, seat int) (GameState, error) {
	if state.Table == nil {
		return state, ErrPassOnEmptyTable
	}

	next := state
	next.History = appendRecord(state.History, PlayRecord{Seat: seat})

	if trailingPasses(next.History) >= 3 {
		// Round over: clear the table and give the lead back to whoever
		// played the standing hand, not the next seat in rotation.
		next.Current = state.TableOwner
		next.Table = nil
		next.TableOwner = -1
	} else {
		next.Current = (seat + 1) % NumSeats
	}
	return next, nil
}

func applyPlay(state GameState, seat int, cards []Card) (GameState, error) {
	hand, ok := Classify(cards)
	if !ok {
		return state, ErrIllegalCombination
	}
	if len(state.History) == 0 && !containsCard(cards, OpeningCard) {
		return state, ErrMustIncludeOpeningCard
	}
	if !holdsAll(state.Players[seat].Hand, cards) {
		return state, ErrNotHoldingCards
	}
	if !IsLegalPlay(hand, state.Table) {
		return state, ErrCannotBeatTable
	}

	next := state
	next.Players[seat].Hand = removeCards(state.Players[seat].Hand, cards)
	next.Table = &hand
	next.TableOwner = seat
	next.History = appendRecord(state.History, PlayRecord{Seat: seat, Hand: &hand})
	next.Current = (seat + 1) % NumSeats

	if len(next.Players[seat].Hand) == 0 {
		finishGame(&next, seat)
	}
	return next, nil
}

// appendRecord appends without sharing backing storage with the input
// history, so already-broadcast states stay frozen.
func appendRecord(history []PlayRecord, rec PlayRecord) []PlayRecord {
	out := make([]PlayRecord, 0, len(history)+1)
	out = append(out, history...)
	return append(out, rec)
}

// trailingPasses counts consecutive passes at the end of the history.
func trailingPasses(history []PlayRecord) int {
	n := 0
	for i := len(history) - 1; i >= 0 && history[i].Hand == nil; i-- {
		n++
	}
	return n
}

func containsCard(cards []Card, want Card) bool {
	for _, c := range cards {
		if c == want {
			return true
		}
	}
	return false
}

// holdsAll reports whether every played card is present in the hand.
func holdsAll(hand []Card, cards []Card) bool {
	return len(removeCards(hand, cards)) == len(hand)-len(cards)
}

// ---------------------------------------------------------------------------
// Scoring
// ---------------------------------------------------------------------------

// Deduction is the end-of-game penalty for a losing hand: remaining card
// count times 2^doublings, where holding 8+ cards is one doubling and each
// unplayed 2 is another, capped at 5.
func Deduction(cards []Card) int {
	count := len(cards)
	if count == 0 {
		return 0
	}
	doublings := 0
	if count >= 8 {
		doublings++
	}
	for _, c := range cards {
		if c.Rank() == RankTwo {
			doublings++
		}
	}
	if doublings > 5 {
		doublings = 5
	}
	return count << doublings
}

// finishGame settles scores as a single zero-sum transfer from the three
// losers to the winner.
func finishGame(state *GameState, winner int) {
	total := 0
	for i := 0; i < NumSeats; i++ {
		if i == winner {
			continue
		}
		d := Deduction(state.Players[i].Hand)
		state.Players[i].Score -= d
		total += d
	}
	state.Players[winner].Score += total
	state.Finished = true
	state.Winners = append(state.Winners, state.Players[winner].ID)
}
