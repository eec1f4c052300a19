package engine

// Compare orders two hands of the same type: positive when a is stronger,
// negative when b is, zero only for equal strength (impossible between
// distinct card groups in one deck). Comparing different types is only
// meaningful through IsLegalPlay.
func Compare(a, b Hand) int {
	if a.Value != b.Value {
		return a.Value - b.Value
	}
	return int(a.SuitValue) - int(b.SuitValue)
}

// IsLegalPlay reports whether played may be placed over the current table
// hand. A nil table means the round is open and any classified hand leads.
//
// Two-tier domination: StraightFlush beats everything, a stronger
// StraightFlush beats a weaker one; FourOfAKind beats everything except a
// StraightFlush. All remaining types only compete within their own type,
// on strict strength.
func IsLegalPlay(played Hand, table *Hand) bool {
	if table == nil {
		return true
	}

	if played.Type == StraightFlush {
		if table.Type == StraightFlush {
			return Compare(played, *table) > 0
		}
		return true
	}

	if played.Type == FourOfAKind {
		switch table.Type {
		case StraightFlush:
			return false
		case FourOfAKind:
			return Compare(played, *table) > 0
		}
		return true
	}

	if played.Type != table.Type {
		return false
	}
	return Compare(played, *table) > 0
}
