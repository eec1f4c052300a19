package room

import "github.com/shenmao/bigtwo/internal/engine"

// ViewPlayer is one seat's state as seen by a particular observer. Hand is
// populated only for the observer's own seat; everyone else shows a count.
type ViewPlayer struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Computer bool          `json:"isComputer"`
	HandSize int           `json:"handSize"`
	Hand     []engine.Card `json:"hand,omitempty"`
	Score    int           `json:"score"`
	// Penalty is the deduction this hand would cost if the game ended now.
	Penalty int `json:"penalty"`
}

// StateView is the game state shaped for one observing seat.
type StateView struct {
	Players    [engine.NumSeats]ViewPlayer `json:"players"`
	Current    int                         `json:"currentPlayerIndex"`
	Table      *engine.Hand                `json:"tableHand"`
	TableOwner int                         `json:"tableOwnerIndex"`
	Turns      int                         `json:"turns"`
	Finished   bool                        `json:"isFinished"`
	Winners    []string                    `json:"winners,omitempty"`
}

// buildView shapes the state for the given observer seat; a negative seat
// (a spectatorless broadcast shape never used today, or a computer seat)
// reveals no hand.
func buildView(state *engine.GameState, forSeat int) *StateView {
	view := &StateView{
		Current:    state.Current,
		Table:      state.Table,
		TableOwner: state.TableOwner,
		Turns:      len(state.History),
		Finished:   state.Finished,
		Winners:    state.Winners,
	}
	for i, p := range state.Players {
		vp := ViewPlayer{
			ID:       p.ID,
			Name:     p.Name,
			Computer: !p.Human,
			HandSize: len(p.Hand),
			Score:    p.Score,
			Penalty:  engine.Deduction(p.Hand),
		}
		if i == forSeat {
			vp.Hand = p.Hand
		}
		view.Players[i] = vp
	}
	return view
}
