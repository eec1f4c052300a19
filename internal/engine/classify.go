package engine

// ---------------------------------------------------------------------------
// Straight recognition
// ---------------------------------------------------------------------------

// wrapStraight is a straight whose rank set is not contiguous under the
// ordinal encoding but is legal under the house ranking. Each pattern has a
// fixed strength value and an anchor rank whose suit breaks ties.
type wrapStraight struct {
	ranks  [5]uint8 // ascending ordinals
	value  int
	anchor uint8 // rank of the tie-break card
}

// The four wrap patterns. {3,4,5,A,2} is the weakest straight of all and
// {3,4,5,6,2} the strongest; the two middle patterns sit below every
// ordinary run (ordinary values start at 7).
var wrapStraights = [4]wrapStraight{
	{ranks: [5]uint8{RankThree, RankFour, RankFive, RankAce, RankTwo}, value: 0, anchor: RankTwo},
	{ranks: [5]uint8{RankThree, RankQueen, RankKing, RankAce, RankTwo}, value: 3, anchor: RankThree},
	{ranks: [5]uint8{RankThree, RankFour, RankKing, RankAce, RankTwo}, value: 4, anchor: RankFour},
	{ranks: [5]uint8{RankThree, RankFour, RankFive, RankSix, RankTwo}, value: 100, anchor: RankTwo},
}

// straightInfo reports whether five ascending distinct ranks form a straight,
// and if so its strength value and anchor rank.
func straightInfo(ranks [5]uint8) (value int, anchor uint8, ok bool) {
	consecutive := true
	for i := 1; i < 5; i++ {
		if ranks[i] != ranks[i-1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return int(ranks[4]), ranks[4], true
	}
	for _, w := range wrapStraights {
		if ranks == w.ranks {
			return w.value, w.anchor, true
		}
	}
	return 0, 0, false
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// Classify identifies the hand type and comparison values of a card group.
// It is total: any group that is not a legal 1-, 2-, or 5-card combination
// reports ok=false rather than failing.
func Classify(cards []Card) (Hand, bool) {
	sorted := SortCards(cards)

	switch len(sorted) {
	case 1:
		return Hand{
			Type:      Single,
			Cards:     sorted,
			Value:     int(sorted[0].Rank()),
			SuitValue: sorted[0].Suit(),
		}, true

	case 2:
		if sorted[0].Rank() != sorted[1].Rank() {
			return Hand{}, false
		}
		return Hand{
			Type:      Pair,
			Cards:     sorted,
			Value:     int(sorted[0].Rank()),
			SuitValue: sorted[1].Suit(), // sorted, so the higher suit
		}, true

	case 5:
		return classifyFive(sorted)
	}
	return Hand{}, false
}

// classifyFive classifies a sorted 5-card group.
func classifyFive(sorted []Card) (Hand, bool) {
	// Rank frequency histogram over the sorted cards.
	counts := map[uint8]int{}
	for _, c := range sorted {
		counts[c.Rank()]++
	}

	switch len(counts) {
	case 2:
		// 4+1 or 3+2 split.
		var quadRank, tripleRank uint8
		hasQuad, hasTriple := false, false
		for r, n := range counts {
			switch n {
			case 4:
				quadRank, hasQuad = r, true
			case 3:
				tripleRank, hasTriple = r, true
			}
		}
		if hasQuad {
			return Hand{Type: FourOfAKind, Cards: sorted, Value: int(quadRank)}, true
		}
		if hasTriple {
			return Hand{Type: FullHouse, Cards: sorted, Value: int(tripleRank)}, true
		}
		return Hand{}, false

	case 5:
		var ranks [5]uint8
		for i, c := range sorted {
			ranks[i] = c.Rank()
		}
		value, anchor, ok := straightInfo(ranks)
		if !ok {
			return Hand{}, false
		}
		t := Straight
		if allSameSuit(sorted) {
			t = StraightFlush
		}
		return Hand{
			Type:      t,
			Cards:     sorted,
			Value:     value,
			SuitValue: suitOfRank(sorted, anchor),
		}, true
	}

	// Two pair, triple+singles, etc. — not a hand.
	return Hand{}, false
}

func allSameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			return false
		}
	}
	return true
}

// suitOfRank returns the suit of the card holding the given rank.
func suitOfRank(cards []Card, rank uint8) uint8 {
	for _, c := range cards {
		if c.Rank() == rank {
			return c.Suit()
		}
	}
	return 0
}
