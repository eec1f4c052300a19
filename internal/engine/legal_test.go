package engine

import "testing"

func mustClassify(t *testing.T, cards []Card) Hand {
	t.Helper()
	h, ok := Classify(cards)
	if !ok {
		t.Fatalf("expected %v to classify", cards)
	}
	return h
}

func TestLegalOverEmptyTable(t *testing.T) {
	single := mustClassify(t, hand([2]uint8{SuitClub, RankThree}))
	if !IsLegalPlay(single, nil) {
		t.Error("any classified hand leads an open round")
	}
}

func TestLegalSameTypeStrict(t *testing.T) {
	low := mustClassify(t, hand([2]uint8{SuitSpade, RankNine}))
	high := mustClassify(t, hand([2]uint8{SuitClub, RankTen}))

	if !IsLegalPlay(high, &low) {
		t.Error("higher rank single must beat lower rank single")
	}
	if IsLegalPlay(low, &high) {
		t.Error("lower single must not beat higher single")
	}
	if IsLegalPlay(low, &low) {
		t.Error("equal strength must not beat (strictly greater required)")
	}
}

func TestLegalSuitTieBreak(t *testing.T) {
	club := mustClassify(t, hand([2]uint8{SuitClub, RankNine}))
	spade := mustClassify(t, hand([2]uint8{SuitSpade, RankNine}))
	if !IsLegalPlay(spade, &club) {
		t.Error("same rank, higher suit must win")
	}
	if IsLegalPlay(club, &spade) {
		t.Error("same rank, lower suit must lose")
	}
}

func TestLegalCrossTypeRejected(t *testing.T) {
	straight := mustClassify(t, hand(
		[2]uint8{SuitClub, RankThree}, [2]uint8{SuitDiamond, RankFour}, [2]uint8{SuitClub, RankFive},
		[2]uint8{SuitDiamond, RankSix}, [2]uint8{SuitClub, RankSeven}))
	full := mustClassify(t, hand(
		[2]uint8{SuitClub, RankFour}, [2]uint8{SuitDiamond, RankFour}, [2]uint8{SuitHeart, RankFour},
		[2]uint8{SuitClub, RankNine}, [2]uint8{SuitDiamond, RankNine}))

	if IsLegalPlay(straight, &full) {
		t.Error("a straight must never beat a full house")
	}
	if IsLegalPlay(full, &straight) {
		t.Error("a full house must never beat a straight")
	}
}

func TestMonsterDomination(t *testing.T) {
	// Weakest straight flush versus the strongest four of a kind.
	weakestSF := mustClassify(t, hand(
		[2]uint8{SuitClub, RankThree}, [2]uint8{SuitClub, RankFour}, [2]uint8{SuitClub, RankFive},
		[2]uint8{SuitClub, RankAce}, [2]uint8{SuitClub, RankTwo}))
	quadTwos := mustClassify(t, hand(
		[2]uint8{SuitClub, RankTwo}, [2]uint8{SuitDiamond, RankTwo},
		[2]uint8{SuitHeart, RankTwo}, [2]uint8{SuitSpade, RankTwo},
		[2]uint8{SuitClub, RankThree}))

	if !IsLegalPlay(weakestSF, &quadTwos) {
		t.Error("any straight flush beats any four of a kind")
	}
	if IsLegalPlay(quadTwos, &weakestSF) {
		t.Error("no four of a kind beats a straight flush")
	}

	// Four of a kind beats every non-monster type regardless of strength.
	for _, table := range []Hand{
		mustClassify(t, hand([2]uint8{SuitSpade, RankTwo})),
		mustClassify(t, hand([2]uint8{SuitHeart, RankTwo}, [2]uint8{SuitSpade, RankTwo})),
		mustClassify(t, hand(
			[2]uint8{SuitClub, RankAce}, [2]uint8{SuitDiamond, RankAce}, [2]uint8{SuitHeart, RankAce},
			[2]uint8{SuitClub, RankKing}, [2]uint8{SuitDiamond, RankKing})),
	} {
		quadThrees := mustClassify(t, hand(
			[2]uint8{SuitClub, RankThree}, [2]uint8{SuitDiamond, RankThree},
			[2]uint8{SuitHeart, RankThree}, [2]uint8{SuitSpade, RankThree},
			[2]uint8{SuitClub, RankFive}))
		if !IsLegalPlay(quadThrees, &table) {
			t.Errorf("four of a kind must beat %v table", table.Type)
		}
	}
}

func TestMonsterWithinTier(t *testing.T) {
	quadThrees := mustClassify(t, hand(
		[2]uint8{SuitClub, RankThree}, [2]uint8{SuitDiamond, RankThree},
		[2]uint8{SuitHeart, RankThree}, [2]uint8{SuitSpade, RankThree},
		[2]uint8{SuitClub, RankFive}))
	quadFours := mustClassify(t, hand(
		[2]uint8{SuitClub, RankFour}, [2]uint8{SuitDiamond, RankFour},
		[2]uint8{SuitHeart, RankFour}, [2]uint8{SuitSpade, RankFour},
		[2]uint8{SuitClub, RankFive}))

	if !IsLegalPlay(quadFours, &quadThrees) {
		t.Error("stronger quad must beat weaker quad")
	}
	if IsLegalPlay(quadThrees, &quadFours) {
		t.Error("weaker quad must not beat stronger quad")
	}

	sfLow := mustClassify(t, hand(
		[2]uint8{SuitClub, RankThree}, [2]uint8{SuitClub, RankFour}, [2]uint8{SuitClub, RankFive},
		[2]uint8{SuitClub, RankSix}, [2]uint8{SuitClub, RankSeven}))
	sfHigh := mustClassify(t, hand(
		[2]uint8{SuitSpade, RankTen}, [2]uint8{SuitSpade, RankJack}, [2]uint8{SuitSpade, RankQueen},
		[2]uint8{SuitSpade, RankKing}, [2]uint8{SuitSpade, RankAce}))

	if !IsLegalPlay(sfHigh, &sfLow) {
		t.Error("stronger straight flush must beat weaker one")
	}
	if IsLegalPlay(sfLow, &sfHigh) {
		t.Error("weaker straight flush must not beat stronger one")
	}
}
