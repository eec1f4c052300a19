package engine

// RuleError is a locally recoverable rule violation. The room layer relays
// it to the originating seat only; the game state is never changed by a
// rejected intent.
type RuleError string

func (e RuleError) Error() string { return string(e) }

const (
	ErrNotYourTurn            RuleError = "not your turn"
	ErrGameFinished           RuleError = "game already finished"
	ErrPassOnEmptyTable       RuleError = "cannot pass when table is clear"
	ErrIllegalCombination     RuleError = "invalid card combination"
	ErrMustIncludeOpeningCard RuleError = "first hand must include the 3 of clubs"
	ErrCannotBeatTable        RuleError = "hand cannot beat current table hand"
	ErrNotHoldingCards        RuleError = "cards are not in your hand"
)
