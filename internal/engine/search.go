package engine

import "sort"

// Combination search used by the move-assist buttons and the computer
// player. The search is driven by rank-group membership, so it stays
// bounded for a 13-card hand; it returns a representative candidate set,
// and every candidate it returns is legality-checked against the table.

// rankGroup holds all cards of one rank, ascending by suit.
type rankGroup struct {
	rank  uint8
	cards []Card
}

// groupByRank splits a hand into rank groups ordered by ascending rank.
func groupByRank(cards []Card) []rankGroup {
	sorted := SortCards(cards)
	var groups []rankGroup
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == c.Rank() {
			groups[n-1].cards = append(groups[n-1].cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank(), cards: []Card{c}})
	}
	return groups
}

// FindPairs returns the pairs in hand that may legally be played over the
// table hand. Candidates are formed from rank-adjacent cards of the sorted
// hand, in ascending order.
func FindPairs(hand []Card, table *Hand) [][]Card {
	sorted := SortCards(hand)
	var pairs [][]Card
	for i := 0; i+1 < len(sorted); i++ {
		combo := []Card{sorted[i], sorted[i+1]}
		h, ok := Classify(combo)
		if !ok || h.Type != Pair {
			continue
		}
		if IsLegalPlay(h, table) {
			pairs = append(pairs, combo)
		}
	}
	return pairs
}

// FindFiveCardHands returns legal 5-card combinations of the requested
// type that beat the table hand. Candidates are enumerated in ascending
// rank order, so the first result is the weakest — callers that take the
// first found rely on that.
func FindFiveCardHands(hand []Card, table *Hand, want HandType) [][]Card {
	if len(hand) < 5 {
		return nil
	}
	switch want {
	case FullHouse:
		return findFullHouses(hand, table)
	case FourOfAKind:
		return findFourOfAKinds(hand, table)
	case Straight, StraightFlush:
		return findStraights(hand, table, want)
	}
	return nil
}

func findFullHouses(hand []Card, table *Hand) [][]Card {
	groups := groupByRank(hand)
	var results [][]Card
	for _, trip := range groups {
		if len(trip.cards) < 3 {
			continue
		}
		for _, pair := range groups {
			if pair.rank == trip.rank || len(pair.cards) < 2 {
				continue
			}
			combo := append(append([]Card(nil), trip.cards[:3]...), pair.cards[:2]...)
			if h, ok := Classify(combo); ok && IsLegalPlay(h, table) {
				results = append(results, combo)
			}
		}
	}
	return results
}

func findFourOfAKinds(hand []Card, table *Hand) [][]Card {
	groups := groupByRank(hand)
	sorted := SortCards(hand)
	var results [][]Card
	for _, quad := range groups {
		if len(quad.cards) != 4 {
			continue
		}
		for _, kicker := range sorted {
			if kicker.Rank() == quad.rank {
				continue
			}
			combo := append(append([]Card(nil), quad.cards...), kicker)
			if h, ok := Classify(combo); ok && IsLegalPlay(h, table) {
				results = append(results, combo)
			}
		}
	}
	return results
}

// findStraights enumerates candidate straight rank windows: every run of 5
// consecutive held ordinals plus the wrap patterns fully covered by held
// ranks. For ordinary straights one witness card per rank suffices; a
// straight flush additionally needs all five witnesses in one suit, tried
// per suit.
func findStraights(hand []Card, table *Hand, want HandType) [][]Card {
	groups := groupByRank(hand)
	byRank := map[uint8][]Card{}
	ranks := make([]uint8, 0, len(groups))
	for _, g := range groups {
		byRank[g.rank] = g.cards
		ranks = append(ranks, g.rank)
	}

	var windows [][5]uint8
	for i := 0; i+4 < len(ranks); i++ {
		if ranks[i+4]-ranks[i] == 4 {
			windows = append(windows, [5]uint8{ranks[i], ranks[i+1], ranks[i+2], ranks[i+3], ranks[i+4]})
		}
	}
	for _, w := range wrapStraights {
		covered := true
		for _, r := range w.ranks {
			if len(byRank[r]) == 0 {
				covered = false
				break
			}
		}
		if covered {
			windows = append(windows, w.ranks)
		}
	}

	var results [][]Card
	for _, window := range windows {
		if want == StraightFlush {
			for suit := uint8(SuitClub); suit <= SuitSpade; suit++ {
				combo := suitedWitnesses(byRank, window, suit)
				if combo == nil {
					continue
				}
				if h, ok := Classify(combo); ok && h.Type == StraightFlush && IsLegalPlay(h, table) {
					results = append(results, combo)
				}
			}
			continue
		}
		combo := make([]Card, 0, 5)
		for _, r := range window {
			combo = append(combo, byRank[r][0])
		}
		if h, ok := Classify(combo); ok && h.Type == Straight && IsLegalPlay(h, table) {
			results = append(results, combo)
		}
	}
	return results
}

// suitedWitnesses picks one card of the given suit per window rank, or nil
// if any rank lacks that suit.
func suitedWitnesses(byRank map[uint8][]Card, window [5]uint8, suit uint8) []Card {
	combo := make([]Card, 0, 5)
	for _, r := range window {
		found := false
		for _, c := range byRank[r] {
			if c.Suit() == suit {
				combo = append(combo, c)
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return combo
}

// ---------------------------------------------------------------------------
// Display ordering
// ---------------------------------------------------------------------------

// AutoOrganize returns the hand re-ordered for display: greedily extracted
// four-of-a-kinds with kicker, then full houses, until neither remains,
// followed by all same-rank pairs low to high, then leftover singles. The
// card set never changes, only its order, and re-running converges.
func AutoOrganize(hand []Card) []Card {
	remaining := SortCards(hand)
	var organized []Card

	for {
		combo := takeQuadWithKicker(remaining)
		if combo == nil {
			combo = takeFullHouse(remaining)
		}
		if combo == nil {
			break
		}
		remaining = removeCards(remaining, combo)
		organized = append(organized, combo...)
	}

	for _, g := range groupByRank(remaining) {
		if len(g.cards) >= 2 {
			pair := g.cards[:2]
			remaining = removeCards(remaining, pair)
			organized = append(organized, pair...)
		}
	}

	return append(organized, remaining...)
}

// byFreqThenRank orders rank groups by descending count, then descending rank.
func byFreqThenRank(groups []rankGroup) []rankGroup {
	ordered := append([]rankGroup(nil), groups...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].cards) != len(ordered[j].cards) {
			return len(ordered[i].cards) > len(ordered[j].cards)
		}
		return ordered[i].rank > ordered[j].rank
	})
	return ordered
}

func takeQuadWithKicker(remaining []Card) []Card {
	ordered := byFreqThenRank(groupByRank(remaining))
	for _, g := range ordered {
		if len(g.cards) != 4 {
			continue
		}
		for _, kicker := range ordered {
			if kicker.rank != g.rank {
				return append(append([]Card(nil), g.cards...), kicker.cards[0])
			}
		}
	}
	return nil
}

func takeFullHouse(remaining []Card) []Card {
	ordered := byFreqThenRank(groupByRank(remaining))
	for _, trip := range ordered {
		if len(trip.cards) != 3 {
			continue
		}
		for _, pair := range ordered {
			if pair.rank != trip.rank && len(pair.cards) >= 2 {
				return append(append([]Card(nil), trip.cards...), pair.cards[:2]...)
			}
		}
	}
	return nil
}

// removeCards returns hand without the given cards (each removed once).
func removeCards(hand []Card, drop []Card) []Card {
	out := append([]Card(nil), hand...)
	for _, d := range drop {
		for i, c := range out {
			if c == d {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}
