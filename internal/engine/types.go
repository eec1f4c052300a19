// Package engine implements the Big Two rules: card and hand
// classification, play legality, combination search, and the per-game
// turn state machine.
//
// Everything in this package is pure. Functions either return a fresh
// value or report that the input is not a legal combination; nothing
// here performs I/O or retains state between calls.
package engine

import "sort"

// Suit constants — packed into the upper 4 bits of Card.
// Suit order is the tie-break order: Club < Diamond < Heart < Spade.
const (
	SuitClub    uint8 = 0
	SuitDiamond uint8 = 1
	SuitHeart   uint8 = 2
	SuitSpade   uint8 = 3
)

// Rank ordinals — packed into the lower 4 bits of Card.
// Two is the highest rank in Big Two, so it maps to 15: plain numeric
// comparison of ordinals equals strength comparison.
const (
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
	RankAce   uint8 = 14
	RankTwo   uint8 = 15
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank ordinal.
type Card uint8

// NewCard constructs a Card from suit and rank ordinal.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank ordinal (lower 4 bits, 3..15).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Less orders cards by rank, then by suit.
func (c Card) Less(other Card) bool {
	if c.Rank() != other.Rank() {
		return c.Rank() < other.Rank()
	}
	return c.Suit() < other.Suit()
}

var rankNames = map[uint8]string{
	RankThree: "3", RankFour: "4", RankFive: "5", RankSix: "6",
	RankSeven: "7", RankEight: "8", RankNine: "9", RankTen: "10",
	RankJack: "J", RankQueen: "Q", RankKing: "K", RankAce: "A", RankTwo: "2",
}

var suitNames = [4]string{"C", "D", "H", "S"}

// String renders a card as rank+suit, e.g. "3C" or "10S".
func (c Card) String() string {
	r, ok := rankNames[c.Rank()]
	if !ok {
		return "?"
	}
	s := c.Suit()
	if s > SuitSpade {
		return "?"
	}
	return r + suitNames[s]
}

// OpeningCard is the card the very first play of a game must include.
const OpeningCard = Card(SuitClub<<4 | RankThree)

// HandType classifies a legal combination of 1, 2, or 5 cards.
type HandType uint8

const (
	Single HandType = iota
	Pair
	Straight
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the hand type name.
func (t HandType) String() string {
	switch t {
	case Single:
		return "Single"
	case Pair:
		return "Pair"
	case Straight:
		return "Straight"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	}
	return "Unknown"
}

// Hand is a classified combination: its type, the constituent cards in
// sorted order, a primary strength value and a suit tie-break value.
// A Hand is only ever produced by Classify, so holding one implies the
// cards form a legal combination.
type Hand struct {
	Type      HandType `json:"type"`
	Cards     []Card   `json:"cards"`
	Value     int      `json:"value"`
	SuitValue uint8    `json:"suitValue"`
}

// SortCards returns a copy of cards sorted by rank, then suit.
func SortCards(cards []Card) []Card {
	sorted := append([]Card(nil), cards...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return sorted
}
