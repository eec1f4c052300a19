// Package bot implements the heuristic computer player. Decide is a pure
// function over the engine's search API; the room layer owns scheduling
// and submits the result through the same entry point as a human intent.
package bot

import (
	"github.com/shenmao/bigtwo/internal/engine"
)

// Decide picks the cards a computer seat plays, or nil to pass.
//
// The search orders below are deliberate and observable tie-break policy,
// not incidental: the first legal candidate found wins.
func Decide(hand []engine.Card, table *engine.Hand, firstAction bool, level Difficulty) []engine.Card {
	sorted := engine.SortCards(hand)

	if table == nil {
		if firstAction {
			return openGame(sorted)
		}
		return leadRound(sorted)
	}

	switch len(table.Cards) {
	case 5:
		return followFive(sorted, table)
	case 2:
		return followPair(sorted, table, level)
	case 1:
		return followSingle(sorted, table, level)
	}
	return nil
}

// openGame chooses the game's forced first play, which must include the
// opening card: a 5-card combination holding it (straights searched before
// full houses), else a pair of threes holding it, else the card alone.
func openGame(sorted []engine.Card) []engine.Card {
	opening := engine.OpeningCard
	if !contains(sorted, opening) {
		// Not the legitimate starter; the engine will reject anything but
		// the opening card anyway, so just offer the lowest single.
		return sorted[:1]
	}

	var fives [][]engine.Card
	fives = append(fives, engine.FindFiveCardHands(sorted, nil, engine.Straight)...)
	fives = append(fives, engine.FindFiveCardHands(sorted, nil, engine.FullHouse)...)
	for _, combo := range fives {
		if contains(combo, opening) {
			return combo
		}
	}

	threes := cardsOfRank(sorted, engine.RankThree)
	if len(threes) >= 2 {
		return threes[:2] // sorted, so the club three leads the pair
	}
	return []engine.Card{opening}
}

// leadRound opens a fresh round: full house, straight, pair, lowest single.
func leadRound(sorted []engine.Card) []engine.Card {
	if fulls := engine.FindFiveCardHands(sorted, nil, engine.FullHouse); len(fulls) > 0 {
		return fulls[0]
	}
	if straights := engine.FindFiveCardHands(sorted, nil, engine.Straight); len(straights) > 0 {
		return straights[0]
	}
	if pairs := engine.FindPairs(sorted, nil); len(pairs) > 0 {
		return pairs[0]
	}
	return sorted[:1]
}

// followFive answers a 5-card table hand, weakest category first.
func followFive(sorted []engine.Card, table *engine.Hand) []engine.Card {
	order := [4]engine.HandType{engine.Straight, engine.FullHouse, engine.FourOfAKind, engine.StraightFlush}
	for _, t := range order {
		if combos := engine.FindFiveCardHands(sorted, table, t); len(combos) > 0 {
			return combos[0]
		}
	}
	return nil
}

// followPair answers a pair; Hard and above may intercept with a monster.
func followPair(sorted []engine.Card, table *engine.Hand, level Difficulty) []engine.Card {
	if pairs := engine.FindPairs(sorted, table); len(pairs) > 0 {
		return pairs[0]
	}
	if level >= Hard {
		return findMonster(sorted, table)
	}
	return nil
}

// followSingle answers a single with the lowest beating card; Expert and
// Master may intercept with a monster instead of passing.
func followSingle(sorted []engine.Card, table *engine.Hand, level Difficulty) []engine.Card {
	for _, c := range sorted {
		h, ok := engine.Classify([]engine.Card{c})
		if ok && engine.IsLegalPlay(h, table) {
			return []engine.Card{c}
		}
	}
	if level >= Expert {
		return findMonster(sorted, table)
	}
	return nil
}

// findMonster returns the first four-of-a-kind or straight flush that
// legally intercepts the table hand.
func findMonster(sorted []engine.Card, table *engine.Hand) []engine.Card {
	if combos := engine.FindFiveCardHands(sorted, table, engine.FourOfAKind); len(combos) > 0 {
		return combos[0]
	}
	if combos := engine.FindFiveCardHands(sorted, table, engine.StraightFlush); len(combos) > 0 {
		return combos[0]
	}
	return nil
}

func contains(cards []engine.Card, want engine.Card) bool {
	for _, c := range cards {
		if c == want {
			return true
		}
	}
	return false
}

func cardsOfRank(cards []engine.Card, rank uint8) []engine.Card {
	var out []engine.Card
	for _, c := range cards {
		if c.Rank() == rank {
			out = append(out, c)
		}
	}
	return out
}
