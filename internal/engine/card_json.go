package engine

import (
	"encoding/json"
	"fmt"
)

// Cards cross the wire as {"suit":s,"rank":r} records, never as the
// packed byte — the packing is an internal representation.

type cardWire struct {
	Suit uint8 `json:"suit"`
	Rank uint8 `json:"rank"`
}

// MarshalJSON encodes a Card as {"suit":0..3,"rank":3..15}.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardWire{Suit: c.Suit(), Rank: c.Rank()})
}

// UnmarshalJSON decodes {"suit":0..3,"rank":3..15} into a Card,
// rejecting out-of-range values.
func (c *Card) UnmarshalJSON(b []byte) error {
	var w cardWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Suit > SuitSpade {
		return fmt.Errorf("invalid suit %d", w.Suit)
	}
	if w.Rank < RankThree || w.Rank > RankTwo {
		return fmt.Errorf("invalid rank %d", w.Rank)
	}
	*c = NewCard(w.Suit, w.Rank)
	return nil
}

// MarshalJSON encodes a HandType by name ("Pair", "StraightFlush", ...).
func (t HandType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a HandType name.
func (t *HandType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, cand := range [...]HandType{Single, Pair, Straight, FullHouse, FourOfAKind, StraightFlush} {
		if cand.String() == s {
			*t = cand
			return nil
		}
	}
	return fmt.Errorf("unknown hand type %q", s)
}
